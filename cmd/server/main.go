package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/auth"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/utm"
)

const defaultBodyLimit = 4 * 1024 * 1024

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.Install(db)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	rdb := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	var files storage.Uploader
	s3Store, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		slog.Error("object storage init failed", "error", err)
		os.Exit(1)
	}
	if s3Store != nil {
		files = s3Store
	} else {
		slog.Info("object storage not configured, attachments disabled")
	}

	verifier := auth.NewVerifier(cfg)

	// Repositories
	profiles := repository.NewProfileRepository(db)
	influencers := repository.NewInfluencerRepository(db)
	saved := repository.NewSavedInfluencerRepository(db)
	campaigns := repository.NewCampaignRepository(db)
	assignments := repository.NewAssignmentRepository(db)
	interactions := repository.NewInteractionRepository(db)
	intent := repository.NewIntentRepository(db)
	analytics := repository.NewAnalyticsRepository(db)

	// Services
	authService := services.NewAuthService(profiles)
	influencerService := services.NewInfluencerService(influencers, intent)
	savedService := services.NewSavedInfluencerService(saved, influencers)
	campaignService := services.NewCampaignService(campaigns, assignments, influencers, utm.NewGenerator(cfg.UTMBaseURL))
	interactionService := services.NewInteractionService(interactions, influencers, campaigns, files)
	intentService := services.NewIntentService(intent, influencers, nil, nil)
	adminService := services.NewAdminService(analytics, rdb, cfg.AnalyticsCacheTTL)
	aiService := services.NewAIService(cfg)

	// Handlers
	h := routes.Handlers{
		Health:      handlers.NewHealthHandler(db, rdb, influencers, cfg.Env),
		Auth:        handlers.NewAuthHandler(authService),
		Influencer:  handlers.NewInfluencerHandler(influencerService, savedService),
		Campaign:    handlers.NewCampaignHandler(campaignService),
		Interaction: handlers.NewInteractionHandler(interactionService, int64(cfg.AttachmentMaxBytes)),
		Intent:      handlers.NewIntentHandler(intentService),
		Admin:       handlers.NewAdminHandler(adminService),
		AI:          handlers.NewAIHandler(aiService),
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Multipart uploads need room for the attachment plus form overhead.
	bodyLimit := defaultBodyLimit
	if n := cfg.AttachmentMaxBytes + 1024*1024; n > bodyLimit {
		bodyLimit = n
	}

	app := fiber.New(fiber.Config{
		AppName:      "fluencr-backend",
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, verifier, rdb, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if err := rdb.Close(); err != nil {
		slog.Error("redis close error", "error", err)
	}
	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: true, Message: message})
}
