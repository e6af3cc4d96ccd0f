package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campusdesk/campusdesk-api/internal/config"
	"github.com/campusdesk/campusdesk-api/internal/handler"
	"github.com/campusdesk/campusdesk-api/internal/middleware"
	"github.com/campusdesk/campusdesk-api/internal/models"
	"github.com/campusdesk/campusdesk-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler           *handler.AuthHandler
	AdminCourseHandler    *handler.AdminCourseHandler
	AdminUserHandler      *handler.AdminUserHandler
	AdminRequestHandler   *handler.AdminRequestHandler
	AdminDashboardHandler *handler.AdminDashboardHandler
	ProfessorHandler      *handler.ProfessorHandler
	StudentHandler        *handler.StudentHandler
	JWTMiddleware         fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth", middleware.RateLimit("auth", 20, time.Minute))
		deps.AuthHandler.Register(auth)
	}

	admin := api.Group("/admin", jwtMiddleware, middleware.RequireRole(string(models.RoleAdmin)))
	if deps.AdminCourseHandler != nil {
		deps.AdminCourseHandler.Register(admin)
	}
	if deps.AdminUserHandler != nil {
		deps.AdminUserHandler.Register(admin)
	}
	if deps.AdminRequestHandler != nil {
		deps.AdminRequestHandler.Register(admin)
	}
	if deps.AdminDashboardHandler != nil {
		deps.AdminDashboardHandler.Register(admin)
	}

	if deps.ProfessorHandler != nil {
		professor := api.Group("/professor", jwtMiddleware, middleware.RequireRole(string(models.RoleProfessor)))
		deps.ProfessorHandler.Register(professor)
	}

	if deps.StudentHandler != nil {
		student := api.Group("/student", jwtMiddleware, middleware.RequireRole(string(models.RoleStudent)))
		deps.StudentHandler.Register(student)
	}
}
