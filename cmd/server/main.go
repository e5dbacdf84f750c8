package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/scrapcycle/scrapcycle/internal/pkg/config"
	"github.com/scrapcycle/scrapcycle/internal/pkg/database"
	"github.com/scrapcycle/scrapcycle/internal/pkg/health"
	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/pkg/middleware"
	natspkg "github.com/scrapcycle/scrapcycle/internal/pkg/nats"
	"github.com/scrapcycle/scrapcycle/internal/pkg/server"
	wspkg "github.com/scrapcycle/scrapcycle/internal/pkg/websocket"
	locatorGateway "github.com/scrapcycle/scrapcycle/services/locator/gateway"
	locatorHandler "github.com/scrapcycle/scrapcycle/services/locator/handler"
	wsHandler "github.com/scrapcycle/scrapcycle/services/notify/handler/websocket"
	"github.com/scrapcycle/scrapcycle/services/notify/relay"
	pickupGateway "github.com/scrapcycle/scrapcycle/services/pickup/gateway"
	pickupHandler "github.com/scrapcycle/scrapcycle/services/pickup/handler"
	pickupRepository "github.com/scrapcycle/scrapcycle/services/pickup/repository"
	pickupUsecase "github.com/scrapcycle/scrapcycle/services/pickup/usecase"
	pointsHandler "github.com/scrapcycle/scrapcycle/services/points/handler"
	pointsRepository "github.com/scrapcycle/scrapcycle/services/points/repository"
	pointsUsecase "github.com/scrapcycle/scrapcycle/services/points/usecase"
	userHandler "github.com/scrapcycle/scrapcycle/services/user/handler"
	userRepository "github.com/scrapcycle/scrapcycle/services/user/repository"
	userUsecase "github.com/scrapcycle/scrapcycle/services/user/usecase"
)

func main() {
	appName := "scrapcycle"
	configPath := config.GetEnv("CONFIG_PATH", "config/app.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Repositories
	userRepo := userRepository.NewUserRepo(configs, postgresClient.GetDB(), redisClient)
	pickupRepo := pickupRepository.NewPickupRepo(configs, postgresClient.GetDB())
	pointsRepo := pointsRepository.NewPointsRepo(configs, postgresClient.GetDB())

	// Gateways
	pickupGW := pickupGateway.NewPickupGW(natsClient)
	locatorGW := locatorGateway.NewLocatorGW(configs)

	// UseCases
	userUC := userUsecase.NewUserUC(userRepo, configs)
	pickupUC := pickupUsecase.NewPickupUC(pickupRepo, pickupGW, configs)
	pointsUC := pointsUsecase.NewPointsUC(pointsRepo, configs)

	// Handlers
	userH := userHandler.NewHandler(userUC, configs)
	pickupH := pickupHandler.NewHandler(pickupUC, configs)
	pointsH := pointsHandler.NewHandler(pointsUC, natsClient, configs)
	locatorH := locatorHandler.NewHandler(locatorGW, configs)

	// Realtime: websocket manager plus the pickup change-feed relay
	manager := wspkg.NewManager(configs.JWT)
	notifyRelay := relay.NewRelay(natsClient, manager, pickupUC)
	wsH := wsHandler.NewWebSocketHandler(manager, pickupUC)

	if err := pointsH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	if err := notifyRelay.Start(); err != nil {
		zapLogger.Fatal("Failed to start notification relay", zap.Error(err))
	}
	defer notifyRelay.Stop()

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.MetricsMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	userH.RegisterRoutes(e)
	pickupH.RegisterRoutes(e)
	pointsH.RegisterRoutes(e)
	locatorH.RegisterRoutes(e)
	wsH.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server exited with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
