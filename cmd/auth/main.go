package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/masarify/authsvc/internal/pkg/clock"
	"github.com/masarify/authsvc/internal/pkg/config"
	"github.com/masarify/authsvc/internal/pkg/database"
	"github.com/masarify/authsvc/internal/pkg/health"
	"github.com/masarify/authsvc/internal/pkg/jwt"
	"github.com/masarify/authsvc/internal/pkg/logger"
	"github.com/masarify/authsvc/internal/pkg/middleware"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/pkg/password"
	"github.com/masarify/authsvc/internal/pkg/server"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/masarify/authsvc/services/auth"
	"github.com/masarify/authsvc/services/auth/handler"
	httpHandler "github.com/masarify/authsvc/services/auth/handler/http"
	"github.com/masarify/authsvc/services/auth/repository"
	"github.com/masarify/authsvc/services/auth/usecase"
	"go.uber.org/zap"
)

func main() {
	configDir := os.Getenv("CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}

	configs, err := config.InitConfig(configDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", configs.App.Name),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("auth_store", configs.AuthStore.Mode),
		zap.String("rate_store", configs.AuthStore.RateStore),
		zap.Strings("env_files", configs.App.LoadedEnvFiles),
	)

	clk := clock.Real{}
	healthService := health.NewHealthService()
	components := server.NewShutdownManager()

	// Initialize store
	var (
		repo  auth.AuthRepo
		rates auth.RateLedger
		db    *sqlx.DB
	)
	if configs.AuthStore.UsesDatabase() {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to open PostgreSQL", zap.Error(err))
		}
		components.Register("postgres", func(context.Context) error { return postgresClient.Close() })

		pgRepo := repository.NewPostgresRepo(postgresClient.GetDB())
		repo, rates, db = pgRepo, pgRepo, postgresClient.GetDB()
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	} else {
		memRepo := repository.NewMemoryRepo()
		repo, rates = memRepo, memRepo
	}

	if configs.AuthStore.RateStore == models.RateStoreRedis {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		components.Register("redis", func(context.Context) error { return redisClient.Close() })

		rates = repository.NewRedisRateLedger(redisClient.GetClient())
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}

	// Initialize UseCase
	sessions := jwt.NewIssuer(configs.JWT, clk)
	authUC := usecase.NewAuthUC(repo, rates, sessions, password.NewBcryptHasher(configs.Password.Cost), clk, configs)

	// Initialize handlers
	state := health.NewState(clk)
	Handler := handler.NewHandler(httpHandler.NewAuthHandler(authUC), sessions, state, healthService, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.HTTPErrorHandler = utils.EchoErrorHandler
	e.Server.ReadTimeout = configs.Server.ReadTimeout
	e.Server.WriteTimeout = configs.Server.WriteTimeout

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server
	srv := server.NewGracefulServer(e, configs.Server, components)
	zapLogger.Info("Starting server",
		zap.String("app", configs.App.Name),
		zap.String("addr", srv.Addr()),
	)
	srv.Start()

	// The server answers /health while the store is prepared
	boot := &bootstrapper{cfg: configs, repo: repo, authUC: authUC, db: db, state: state}
	if db != nil {
		boot.retrier = newStoreRetrier(configs.Database)
	}
	if err := boot.Run(context.Background()); err != nil {
		zapLogger.Warn("Serving in degraded mode; auth routes answer 503", zap.Error(err))
	}

	if err := srv.Wait(context.Background()); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}
}
