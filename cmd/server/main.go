package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/adapter/cache"
	"github.com/seu-repo/pos-insight/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/pos-insight/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/pos-insight/internal/adapter/queue"
	"github.com/seu-repo/pos-insight/internal/adapter/storage/postgres"
	wsAdapter "github.com/seu-repo/pos-insight/internal/adapter/websocket"
	"github.com/seu-repo/pos-insight/internal/ports"
	"github.com/seu-repo/pos-insight/internal/service/analytics"
	"github.com/seu-repo/pos-insight/internal/service/health"
	"github.com/seu-repo/pos-insight/internal/service/ingest"
	"github.com/seu-repo/pos-insight/internal/service/store"
	"github.com/seu-repo/pos-insight/internal/service/transaction"
	"github.com/seu-repo/pos-insight/pkg/config"
)

const (
	serviceName    = "pos-insight"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting POS Insight",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	// Run migrations
	if err := postgres.RunMigrations(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// 4. Initialize Cache. Redis when configured, in-process otherwise.
	var appCache ports.Cache
	if cfg.Redis.URL != "" {
		appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
	} else {
		logger.Warn("Redis URL not set, falling back to in-process cache")
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 5. Initialize Message Queue
	var messageQueue queue.MessageQueue
	switch cfg.Queue.Backend {
	case "rabbitmq":
		messageQueue, err = queue.NewRabbitMQQueue(cfg.RabbitMQ.URL, logger)
	default:
		messageQueue, err = queue.NewNATSQueue(cfg.NATS.URL, cfg.NATS.MaxReconnects, cfg.NATS.ReconnectWait, logger)
	}
	if err != nil {
		logger.Fatal("Failed to connect to message queue",
			zap.String("backend", cfg.Queue.Backend),
			zap.Error(err),
		)
	}
	defer messageQueue.Close()

	// 6. Initialize Repositories
	transactionRepo := postgres.NewTransactionRepository(db, logger)
	storeRepo := postgres.NewStoreRepository(db, logger)
	uploadRepo := postgres.NewUploadRepository(db, logger)
	summaryRepo := postgres.NewSummaryRepository(db, logger)

	// 7. Initialize Services (Business Logic Layer)
	ingestService := ingest.NewService(transactionRepo, uploadRepo, messageQueue, cfg.Limits.MaxRows,
		ingest.Options{RejectUndated: cfg.Ingest.RejectUndated}, logger)
	transactionService := transaction.NewService(transactionRepo, messageQueue, logger)
	storeService := store.NewService(storeRepo, logger)
	analyticsService := analytics.NewService(transactionRepo, summaryRepo, appCache, cfg.Cache.SummaryTTL, logger)

	healthService := health.NewService(&health.Config{
		Version:   serviceVersion,
		DB:        sqlDB,
		Cache:     appCache,
		QueueName: cfg.Queue.Backend,
	}, logger)

	// 8. Initialize WebSocket Hub (for real-time updates)
	wsHub := wsAdapter.NewHub()
	go wsHub.Run()

	// 9. Start the recompute worker. Every transactions.changed event
	// rebuilds the summaries and notifies connected dashboards.
	if err := analyticsService.StartRecomputeWorker(messageQueue, wsHub.Broadcast); err != nil {
		logger.Fatal("Failed to start recompute worker", zap.Error(err))
	}

	// 10. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		BodyLimit:             int(cfg.Limits.MaxUploadBytes),
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.RateLimiting.Enabled {
		app.Use(middleware.RateLimit(cfg.RateLimiting))
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	healthHandler := health.NewFiberHandler(healthService)
	healthHandler.RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Upload routes
	uploadHandler := handlers.NewUploadHandler(ingestService, cfg.Limits.MaxUploadBytes, logger)
	uploadStatusHandler := handlers.NewUploadStatusHandler(uploadRepo, logger)
	v1.Post("/uploads", uploadHandler.Upload)
	v1.Get("/uploads", uploadStatusHandler.List)
	v1.Get("/uploads/:store_id", uploadStatusHandler.Get)

	// Transaction routes
	txHandler := handlers.NewTransactionHandler(transactionService, logger)
	v1.Post("/transactions", txHandler.Create)
	v1.Get("/transactions", txHandler.List)
	v1.Get("/transactions/:id", txHandler.Get)
	v1.Patch("/transactions/:id", txHandler.Update)
	v1.Delete("/transactions/:id", txHandler.Delete)

	// Store routes
	storeHandler := handlers.NewStoreHandler(storeService, logger)
	v1.Post("/stores", storeHandler.Create)
	v1.Get("/stores", storeHandler.List)
	v1.Get("/stores/:id", storeHandler.Get)
	v1.Put("/stores/:id", storeHandler.Update)
	v1.Delete("/stores/:id", storeHandler.Delete)

	// Analytics routes
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, logger)
	v1.Get("/analytics/sales", analyticsHandler.Sales)
	v1.Get("/analytics/time-demand", analyticsHandler.TimeDemand)
	v1.Get("/analytics/sites", analyticsHandler.Sites)
	v1.Get("/analytics/products", analyticsHandler.Products)
	v1.Get("/analytics/customers", analyticsHandler.Customers)
	v1.Post("/analytics/recompute", analyticsHandler.Recompute)

	// WebSocket routes
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	// Real-time summary updates WebSocket
	app.Get("/ws/updates", websocket.New(func(c *websocket.Conn) {
		wsHub.AddClient(c)
	}))

	// 11. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 12. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
