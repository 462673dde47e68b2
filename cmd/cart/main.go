package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/raritone/storefront/docs"
	"github.com/raritone/storefront/internal/cart"
	"github.com/raritone/storefront/internal/cart/cache"
	"github.com/raritone/storefront/internal/cart/client"
	httpDelivery "github.com/raritone/storefront/internal/cart/delivery/http"
	"github.com/raritone/storefront/internal/cart/domain"
	"github.com/raritone/storefront/internal/cart/repository"
	"github.com/raritone/storefront/kafka"
	"github.com/raritone/storefront/pkg/database"
	"github.com/raritone/storefront/pkg/logger"
	"github.com/raritone/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "cart-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting cart service")

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
		DBName:   getEnv("DB_NAME", "cartdb"),
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
	repo := repository.NewGormCartRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis cart cache. Optional: without it every read goes to Postgres.
	cartCache := newCartCache()

	// Catalog service client for product snapshots
	catalogURL := getEnv("CATALOG_SERVICE_URL", "http://localhost:8081")
	catalogClient := client.NewCatalogClient(catalogURL)

	// Kafka publisher for order-placed events
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
	}
	defer publisher.Close()

	// Pricing configuration
	pricing := loadPricingConfig()
	logger.Logger.Info().
		Int64("shipping_fee", pricing.ShippingFee).
		Int64("free_shipping_threshold", pricing.FreeShippingThreshold).
		Int64("tax_rate_bp", pricing.TaxRateBasisPoints).
		Msg("Pricing configuration loaded")

	// Initialize handler with Wire DI
	handler, err := cart.InitializeHTTPHandler(db, cartCache, catalogClient, publisher, pricing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	logger.Logger.Info().
		Str("catalog_service", catalogURL).
		Strs("kafka_brokers", brokers).
		Msg("Cart handler initialized")

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8082")
	go startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// newCartCache connects to Redis if it is reachable. The cache is a
// read-through optimization, so a missing Redis only costs latency.
func newCartCache() cache.CartCache {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, cart cache disabled")
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis cart cache connected")
	return cache.NewRedisCache(rdb)
}

// loadPricingConfig reads pricing knobs from the environment, all in
// minor currency units except the tax rate, which is in basis points.
func loadPricingConfig() domain.PricingConfig {
	cfg := domain.DefaultPricingConfig()
	cfg.ShippingFee = getEnvInt64("SHIPPING_FEE_MINOR", cfg.ShippingFee)
	cfg.FreeShippingThreshold = getEnvInt64("FREE_SHIPPING_THRESHOLD_MINOR", cfg.FreeShippingThreshold)
	cfg.TaxRateBasisPoints = getEnvInt64("TAX_RATE_BP", cfg.TaxRateBasisPoints)
	return cfg
}

func startHTTPServer(handler *httpDelivery.CartHandler, db *sql.DB, port string) {
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
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
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

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logger.Logger.Warn().Str("key", key).Str("value", value).Msg("Invalid integer env value, using default")
		return defaultValue
	}
	return parsed
}
