package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventasly/internal/application/dto"
	"github.com/tu-usuario/ventasly/internal/application/sales"
	"github.com/tu-usuario/ventasly/internal/domain"
)

// SaleHandler maneja las peticiones HTTP para Sale (protegido).
// El dueño sale siempre de la identidad del middleware, jamás del body.
type SaleHandler struct {
	uc  *sales.SaleUseCase
	dev bool
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, dev bool) *SaleHandler {
	return &SaleHandler{uc: uc, dev: dev}
}

// List godoc
// @Summary      Listar ventas del usuario autenticado
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SaleResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return internalError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "product, quantity > 0 y precios no negativos son requeridos"})
		}
		return internalError(c, err, h.dev)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "quantity > 0 y precios no negativos son requeridos"})
		}
		return internalError(c, err, h.dev)
	}
	if out == nil {
		return saleNotFound(c)
	}
	return c.JSON(out)
}

// AdvanceDeclaration godoc
// @Summary      Marcar venta como declarada (idempotente)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/decstatus [patch]
func (h *SaleHandler) AdvanceDeclaration(c *fiber.Ctx) error {
	out, err := h.uc.AdvanceDeclaration(GetUserID(c), c.Params("id"))
	if err != nil {
		return internalError(c, err, h.dev)
	}
	if out == nil {
		return saleNotFound(c)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(GetUserID(c), c.Params("id"))
	if err != nil {
		return internalError(c, err, h.dev)
	}
	if !deleted {
		return saleNotFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "venta eliminada"})
}

// Report godoc
// @Summary      Reporte PDF de ventas del usuario autenticado
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(GetUserID(c), GetEmail(c))
	if err != nil {
		return internalError(c, err, h.dev)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ventas.pdf"`)
	return c.Send(out)
}

// saleNotFound responde 404 sin distinguir "no existe" de "es de otro dueño".
func saleNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venta no encontrada"})
}
