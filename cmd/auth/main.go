package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brandspace/auraup/internal/pkg/config"
	"github.com/brandspace/auraup/internal/pkg/database"
	"github.com/brandspace/auraup/internal/pkg/health"
	"github.com/brandspace/auraup/internal/pkg/logger"
	"github.com/brandspace/auraup/internal/pkg/middleware"
	nsqpkg "github.com/brandspace/auraup/internal/pkg/nsq"
	"github.com/brandspace/auraup/internal/pkg/server"
	"github.com/brandspace/auraup/services/auth"
	"github.com/brandspace/auraup/services/auth/coordinator"
	"github.com/brandspace/auraup/services/auth/gateway"
	"github.com/brandspace/auraup/services/auth/handler"
	httpHandler "github.com/brandspace/auraup/services/auth/handler/http"
	"github.com/brandspace/auraup/services/auth/repository"
	"github.com/brandspace/auraup/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/auth.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Component cleanup runs in registration order once the server stops
	shutdownManager := server.NewShutdownManager(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Select the OTP delivery channel
	var deliverer auth.OTPDeliverer
	if configs.OTP.DeliveryMode == "inline" {
		zapLogger.Warn("Inline OTP delivery enabled, codes are returned to callers")
		deliverer = gateway.NewInlineDeliverer()
	} else {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			producer.Stop()
			return nil
		})
		deliverer = gateway.NewSMSDeliverer(producer)
	}

	// Initialize UseCase
	authUC := usecase.NewAuthUC(authRepo, deliverer, configs)

	// Initialize the dual-provider coordinator
	verifier := coordinator.NewOAuthVerifier(configs.OAuth)
	coord := coordinator.NewCoordinator(authRepo, verifier, configs)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	sessionHandler := httpHandler.NewSessionHandler(authUC)
	profileHandler := httpHandler.NewProfileHandler(authUC)
	roleHandler := httpHandler.NewRoleHandler(authUC)

	h := handler.NewHandler(authHandler, sessionHandler, profileHandler, roleHandler, authUC, coord)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown error", zap.Error(err))
	}
}
