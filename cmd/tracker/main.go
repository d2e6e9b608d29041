package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/joglog/joglog/internal/pkg/config"
	"github.com/joglog/joglog/internal/pkg/database"
	"github.com/joglog/joglog/internal/pkg/health"
	"github.com/joglog/joglog/internal/pkg/logger"
	"github.com/joglog/joglog/internal/pkg/middleware"
	natspkg "github.com/joglog/joglog/internal/pkg/nats"
	"github.com/joglog/joglog/internal/pkg/server"
	"github.com/joglog/joglog/services/tracking/gateway"
	"github.com/joglog/joglog/services/tracking/handler"
	httpHandler "github.com/joglog/joglog/services/tracking/handler/http"
	natsHandler "github.com/joglog/joglog/services/tracking/handler/nats"
	"github.com/joglog/joglog/services/tracking/repository"
	"github.com/joglog/joglog/services/tracking/usecase"
)

func main() {
	appName := "tracker-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/tracker.env")
	configs := config.InitConfig(configPath)

	// Initialize Zap logger
	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize SQLite database
	sqliteClient, err := database.NewSQLiteClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to open SQLite database", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(configs, sqliteClient.GetDB())
	if err := sessionRepo.InitSchema(context.Background()); err != nil {
		zapLogger.Fatal("Failed to initialize database schema", logger.Err(err))
	}
	liveRepo := repository.NewLiveRepo(configs, redisClient)

	// Initialize gateway
	trackingGW := gateway.NewTrackingGW(natsClient)

	// Initialize use case
	trackingUC := usecase.NewTrackingUC(configs, sessionRepo, liveRepo, trackingGW)

	// Handlers for HTTP
	sessionHandler := httpHandler.NewSessionHandler(trackingUC)
	authHandler := httpHandler.NewAuthHandler(trackingUC)

	// Handlers for NATS
	locationHandler := natsHandler.NewLocationHandler(trackingUC, natsClient)

	// Initialize handlers
	h := handler.NewHandler(sessionHandler, authHandler, locationHandler, configs)

	// Initialize NATS consumers
	if err := h.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Register dependency cleanups, drained in registration order after
	// the HTTP listener stops
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		locationHandler.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return sqliteClient.Close()
	})

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints with dependency checks behind readiness
	healthService := health.NewHealthService()
	healthService.AddChecker("sqlite", health.NewSQLiteHealthChecker(sqliteClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, healthService)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownManager)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", logger.Err(err))
	}
}
