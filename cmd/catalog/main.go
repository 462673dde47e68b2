package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/raritone/storefront/docs"
	"github.com/raritone/storefront/internal/catalog"
	httpDelivery "github.com/raritone/storefront/internal/catalog/delivery/http"
	"github.com/raritone/storefront/internal/catalog/repository"
	"github.com/raritone/storefront/internal/catalog/usecase/command"
	"github.com/raritone/storefront/kafka"
	"github.com/raritone/storefront/pkg/database"
	"github.com/raritone/storefront/pkg/logger"
	"github.com/raritone/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting catalog service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
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

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "catalogdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	repo := repository.NewGormProductRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handler with Wire DI
	handler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Start the order event consumer so checkouts decrement stock
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	startOrderConsumer(ctx, repo)

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8081")
	go startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// startOrderConsumer subscribes to order-placed events and decrements
// product stock for each purchased line. Kafka being down is not fatal:
// the catalog still serves reads, stock just stops tracking orders.
func startOrderConsumer(ctx context.Context, repo *repository.GormProductRepository) {
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "catalog-service")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer, stock decrements disabled")
		return
	}

	decrementHandler := command.NewDecrementStockHandler(repo)
	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		for _, item := range event.Items {
			cmd := command.DecrementStockCommand{ProductID: item.ProductID, Quantity: item.Quantity}
			if err := decrementHandler.Handle(cmd); err != nil {
				logger.Logger.Error().Err(err).
					Str("order_id", event.OrderID).
					Uint("product_id", item.ProductID).
					Msg("Failed to decrement stock")
			}
		}
		return nil
	})

	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
		}
	}()

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", kafka.TopicOrderPlaced).
		Msg("Order event consumer started")
}

func startHTTPServer(handler *httpDelivery.CatalogHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
