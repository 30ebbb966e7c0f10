package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventasly/internal/application/auth"
	"github.com/tu-usuario/ventasly/internal/application/sales"
	"github.com/tu-usuario/ventasly/internal/application/users"
	"github.com/tu-usuario/ventasly/internal/domain/entity"
	"github.com/tu-usuario/ventasly/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	SaleUC    *sales.SaleUseCase
	UserUC    *users.UserUseCase
	Users     repository.UserRepository
	JWTSecret string
	DevMode   bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.DevMode)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token; la identidad se recarga de la DB)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	// Sales (protegido, acotado por dueño)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.DevMode)
	salesGroup.Get("/report", saleHandler.Report)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Patch("/:id/decstatus", saleHandler.AdvanceDeclaration)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Users (protegido, solo admin)
	usersGroup := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, deps.DevMode)
	usersGroup.Get("/", userHandler.List)
}
