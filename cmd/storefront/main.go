package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/velocita/storefront/internal/app"
	"github.com/velocita/storefront/internal/cart"
	cartdomain "github.com/velocita/storefront/internal/cart/domain"
	cartrepository "github.com/velocita/storefront/internal/cart/repository"
	catalogdomain "github.com/velocita/storefront/internal/catalog/domain"
	catalogrepository "github.com/velocita/storefront/internal/catalog/repository"
	"github.com/velocita/storefront/internal/checkout"
	checkouthttp "github.com/velocita/storefront/internal/checkout/delivery/http"
	"github.com/velocita/storefront/internal/config"
	"github.com/velocita/storefront/internal/notify"
	"github.com/velocita/storefront/kafka"
	"github.com/velocita/storefront/pkg/database"
	"github.com/velocita/storefront/pkg/logger"
	"github.com/velocita/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Product catalog: Postgres by default, embedded catalog in memory mode
	var catalogRepo catalogdomain.CatalogRepository
	var sqlDB *sql.DB

	if cfg.CatalogBackend == "memory" {
		catalogRepo = catalogrepository.NewSeededCatalogRepository()
		logger.Logger.Info().Msg("Serving embedded catalog from memory")
	} else {
		db, err := database.NewGormConnection(cfg.Database)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
		}

		sqlDB, err = db.DB()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
		}
		defer sqlDB.Close()

		gormRepo := catalogrepository.NewGormCatalogRepository(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		if err := gormRepo.Seed(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
		}
		catalogRepo = catalogrepository.NewTracedCatalogRepository(gormRepo)

		logger.Logger.Info().Msg("Database initialized successfully")
	}

	// Cart snapshots live in Redis so a session survives a restart
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	var snapshots cartdomain.SnapshotStore
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, cart snapshots held in memory")
		snapshots = cartrepository.NewMemorySnapshotStore()
	} else {
		snapshots = cartrepository.NewRedisSnapshotStore(redisClient, cfg.Cart.SnapshotKeyPrefix)
		logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Cart snapshot store connected")
	}

	// Kafka publisher and the notification sink
	var publisher *kafka.Publisher
	var notifier cartdomain.Notifier = notify.NewLogNotifier()

	if cfg.Kafka.Enabled {
		publisher, err = kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka unavailable, notifications go to the log")
		} else {
			defer publisher.Close()
			notifier = notify.NewKafkaNotifier(publisher)
		}
	}

	// Cart provider and checkout simulator
	provider := cart.NewProvider(snapshots, notifier, cart.Options{
		ShippingFee:          cfg.Cart.ShippingFee,
		VariantScopedRemoval: cfg.Cart.VariantScopedRemoval,
	})

	var orderPublisher checkout.OrderPublisher
	if publisher != nil {
		orderPublisher = publisher
	}
	simulator := checkout.NewSimulator(cfg.Checkout.ProcessingDelay, orderPublisher)

	// Initialize handlers with Wire DI
	catalogHandler := app.InitializeCatalogHandler(catalogRepo)
	cartHandler := app.InitializeCartHandler(provider, catalogRepo)
	checkoutHandler := checkouthttp.NewCheckoutHandler(simulator)

	logger.Logger.Info().
		Str("catalog_backend", cfg.CatalogBackend).
		Bool("variant_scoped_removal", cfg.Cart.VariantScopedRemoval).
		Int64("shipping_fee", cfg.Cart.ShippingFee).
		Dur("checkout_delay", cfg.Checkout.ProcessingDelay).
		Msg("Storefront handlers initialized")

	// Setup router
	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router, cartHandler.SessionMiddleware)

	// Health check endpoint
	catalogHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: otelhttp.NewHandler(c.Handler(router), "storefront"),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}

	// Let in-flight simulated checkouts settle and clear their carts
	simulator.Wait()
}
