package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/internal/application/auth"
	"github.com/jhoicas/auth-service/internal/application/dto"
	"github.com/jhoicas/auth-service/internal/application/usecase"
	"github.com/jhoicas/auth-service/internal/domain/entity"
	"github.com/jhoicas/auth-service/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	RoleUC    *usecase.RoleUseCase
	Subjects  SubjectResolver
	JWTSecret string
	Metrics   *metrics.Prom // opcional
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Roles (público)
	roleHandler := NewRoleHandler(deps.RoleUC)
	api.Get("/roles", roleHandler.List)
	api.Get("/roles/:name", roleHandler.GetByName)

	// Users (requieren Bearer Token; crear además ADMIN o ADVISOR)
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.Subjects)
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", requireAuth)
	users.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAdvisor), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:documentNumber", userHandler.GetByDocumentNumber)
}
