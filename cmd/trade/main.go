package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/piresc/tradepost/internal/pkg/config"
	"github.com/piresc/tradepost/internal/pkg/database"
	"github.com/piresc/tradepost/internal/pkg/health"
	"github.com/piresc/tradepost/internal/pkg/logger"
	"github.com/piresc/tradepost/internal/pkg/metrics"
	"github.com/piresc/tradepost/internal/pkg/middleware"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/nats"
	"github.com/piresc/tradepost/internal/pkg/seed"
	"github.com/piresc/tradepost/internal/pkg/server"
	"github.com/piresc/tradepost/internal/utils"
	"github.com/piresc/tradepost/services/trade"
	"github.com/piresc/tradepost/services/trade/gateway"
	"github.com/piresc/tradepost/services/trade/handler"
	"github.com/piresc/tradepost/services/trade/repository"
	"github.com/piresc/tradepost/services/trade/usecase"
	"github.com/piresc/tradepost/services/trade/worker"
)

type stores struct {
	listings trade.ListingRepo
	proofs   trade.ProofRepo
	payments trade.PaymentRepo
	links    trade.LinkRepo
}

func main() {
	appName := "trade-service"
	configPath := "configs/trade.env"
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
	ctx := context.Background()

	// Initialize PostgreSQL when listings are persisted there
	var postgresClient *database.PostgresClient
	if configs.Store.Driver == "postgres" {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		if err != nil {
			logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		if err := postgresClient.Migrate(ctx); err != nil {
			logger.Fatal("Failed to apply migrations", logger.Err(err))
		}
		shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	}

	// Initialize Redis for payment slots and write limits
	var redisClient *database.RedisClient
	if configs.Store.Driver == "postgres" || configs.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}

	// Initialize NATS
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))

	// Initialize repositories
	repos := newStores(configs, postgresClient, redisClient)

	// Initialize gateway
	railGW, err := gateway.NewRailGW(configs, natsClient)
	if err != nil {
		logger.Fatal("Failed to initialize rail gateway", logger.Err(err))
	}

	// Initialize usecase
	tradeUC := usecase.NewTradeService(configs, repos.listings, repos.proofs, repos.payments, repos.links, railGW)

	if configs.Seed.File != "" {
		seeds, err := seed.Load(configs.Seed.File)
		if err != nil {
			logger.Fatal("Failed to load seed file", logger.String("file", configs.Seed.File), logger.Err(err))
		}
		listings, err := tradeUC.Seed(ctx, seeds)
		if err != nil {
			logger.Fatal("Failed to seed listings", logger.Err(err))
		}
		logger.Info("Seeded listings", logger.Int("count", len(listings)))
	}

	// Initialize handlers
	h := handler.NewHandler(configs, tradeUC, natsClient)
	if err := h.InitNATSConsumers(); err != nil {
		logger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}
	shutdown.Register("nats-consumers", func(context.Context) error { return h.Close() })

	// Start the timeout sweeper
	sweeper := worker.NewSweeper(tradeUC, configs.Rail.SweepInterval)
	sweeper.Start(ctx)
	shutdown.Register("payment-sweeper", sweeper.Stop)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(metrics.EchoMiddleware(appName))

	health.RegisterHealthEndpoints(e, appName, healthService)
	metrics.RegisterEndpoint(e)

	var limiterClient *redis.Client
	if redisClient != nil {
		limiterClient = redisClient.GetClient()
	}
	h.RegisterRoutes(e, limiterClient)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}

func newStores(cfg *models.Config, postgresClient *database.PostgresClient, redisClient *database.RedisClient) stores {
	var s stores
	if postgresClient != nil {
		db := postgresClient.GetDB()
		s.listings = repository.NewListingRepository(cfg, db)
		s.proofs = repository.NewProofRepository(cfg, db)
		s.payments = repository.NewPaymentRepository(cfg, db)
	} else {
		s.listings = repository.NewMemoryListingRepository()
		s.proofs = repository.NewMemoryProofRepository()
		s.payments = repository.NewMemoryPaymentRepository()
	}

	if redisClient != nil {
		s.links = repository.NewLinkRepository(cfg, redisClient)
	} else {
		s.links = repository.NewMemoryLinkRepository()
	}
	return s
}
