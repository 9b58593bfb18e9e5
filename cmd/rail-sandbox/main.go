package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/config"
	"github.com/piresc/tradepost/internal/pkg/health"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/middleware"
	"github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/internal/pkg/server"
	"github.com/piresc/tradepost/services/railsandbox"
)

func main() {
	appName := "rail-sandbox"
	configPath := "configs/rail-sandbox.env"
	configs := config.InitConfig(configPath)
	configs.App.Name = appName

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService()

	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	rail := railsandbox.NewRail(configs.Sandbox, natsClient)
	shutdown.Register("pending-results", rail.Close)

	h := railsandbox.NewHandler(rail, natsClient)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	shutdown.Register("nats-consumers", func(context.Context) error { return h.Close() })

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(metrics.EchoMiddleware(appName))

	health.RegisterHealthEndpoints(e, appName, healthService)
	metrics.RegisterEndpoint(e)
	h.RegisterRoutes(e)

	logger.Info("Sandbox rail ready",
		logger.Duration("delay", configs.Sandbox.Delay),
		logger.String("fail_domain", configs.Sandbox.FailDomain),
		logger.Float64("max_amount", configs.Sandbox.MaxAmount))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}
