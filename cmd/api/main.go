package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campusdesk/campusdesk-api/internal/config"
	"github.com/campusdesk/campusdesk-api/internal/database"
	"github.com/campusdesk/campusdesk-api/internal/handler"
	"github.com/campusdesk/campusdesk-api/internal/middleware"
	"github.com/campusdesk/campusdesk-api/internal/repository"
	"github.com/campusdesk/campusdesk-api/internal/router"
	"github.com/campusdesk/campusdesk-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// The dashboard cache degrades to direct counts without redis, so a
	// missing cache is a warning rather than a startup failure.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, dashboard caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.TokenTTL, logger)
	courseService := service.NewCourseService(courseRepo, logger)
	assignmentService := service.NewAssignmentService(courseRepo, assignmentRepo, userRepo, logger)
	enrollmentService := service.NewEnrollmentService(courseRepo, enrollmentRepo, userRepo, logger)
	gradeService := service.NewGradeService(courseRepo, enrollmentRepo, gradeRepo, validate, logger)
	requestService := service.NewRequestService(db, requestRepo, courseRepo, assignmentRepo, userRepo, logger)
	dashboardService := service.NewDashboardService(courseRepo, userRepo, requestRepo, redisClient, cfg.DashboardCacheTTL, logger)
	seedService := service.NewSeedService(userRepo, logger)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := seedService.EnsureAdmin(seedCtx, service.AdminSeed{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		cancelSeed()
		log.Fatalf("failed to seed admin account: %v", err)
	}
	cancelSeed()

	authHandler := handler.NewAuthHandler(authService, logger)
	adminCourseHandler := handler.NewAdminCourseHandler(courseService, assignmentService, enrollmentService, dashboardService, validate, logger)
	adminUserHandler := handler.NewAdminUserHandler(authService, dashboardService, validate, logger)
	adminRequestHandler := handler.NewAdminRequestHandler(requestService, dashboardService, validate, logger)
	adminDashboardHandler := handler.NewAdminDashboardHandler(dashboardService, logger)
	professorHandler := handler.NewProfessorHandler(assignmentService, enrollmentService, gradeService, requestService, validate, logger)
	studentHandler := handler.NewStudentHandler(enrollmentService, gradeService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:           authHandler,
		AdminCourseHandler:    adminCourseHandler,
		AdminUserHandler:      adminUserHandler,
		AdminRequestHandler:   adminRequestHandler,
		AdminDashboardHandler: adminDashboardHandler,
		ProfessorHandler:      professorHandler,
		StudentHandler:        studentHandler,
		JWTMiddleware:         middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
