package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventasly/internal/application/users"
)

// UserHandler consultas administrativas de usuarios (solo admin).
type UserHandler struct {
	uc  *users.UserUseCase
	dev bool
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *users.UserUseCase, dev bool) *UserHandler {
	return &UserHandler{uc: uc, dev: dev}
}

// List godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return internalError(c, err, h.dev)
	}
	return c.JSON(out)
}
