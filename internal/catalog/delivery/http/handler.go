package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/raritone/storefront/internal/catalog/domain"
	"github.com/raritone/storefront/internal/catalog/usecase/command"
	"github.com/raritone/storefront/internal/catalog/usecase/query"
	"github.com/raritone/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	createHandler      *command.CreateProductHandler
	updateHandler      *command.UpdateProductHandler
	deleteHandler      *command.DeleteProductHandler
	updateStockHandler *command.UpdateStockHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	browseHandler     *query.BrowseCatalogHandler
	statsHandler      *query.GetStatsHandler

	repo           domain.ProductRepository
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewCatalogHandler creates a new catalog handler with CQRS pattern (manual DI)
func NewCatalogHandler(repo domain.ProductRepository) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		command.NewUpdateStockHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewBrowseCatalogHandler(repo),
		query.NewGetStatsHandler(repo),
		repo,
	)
}

// NewCatalogHandlerWithDI creates a new catalog handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCatalogHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	updateStockHandler *command.UpdateStockHandler,
	getProductHandler *query.GetProductHandler,
	browseHandler *query.BrowseCatalogHandler,
	statsHandler *query.GetStatsHandler,
	repo domain.ProductRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_service_requests_total",
			Help: "Total number of requests to catalog service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_service_request_duration_seconds",
			Help:    "Duration of catalog service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "catalog_service_request_duration_summary",
			Help: "Summary of request durations with percentiles (client-side quantiles)",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_service_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(totalProducts)

	return &CatalogHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		updateStockHandler: updateStockHandler,
		getProductHandler:  getProductHandler,
		browseHandler:      browseHandler,
		statsHandler:       statsHandler,
		repo:               repo,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		requestSummary:     requestSummary,
		totalProducts:      totalProducts,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	// Public routes (no auth required)
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", h.BrowseCatalog)).Methods("GET")
	router.HandleFunc("/api/catalog/stats", h.metricsMiddleware("/api/catalog/stats", h.GetStats)).Methods("GET")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", h.GetProduct)).Methods("GET")

	// Admin routes (admin role required)
	router.HandleFunc("/api/catalog", h.metricsMiddleware("/api/catalog", AdminMiddleware(h.CreateProduct))).Methods("POST")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", AdminMiddleware(h.UpdateProduct))).Methods("PUT")
	router.HandleFunc("/api/catalog/{id}", h.metricsMiddleware("/api/catalog/{id}", AdminMiddleware(h.DeleteProduct))).Methods("DELETE")
	router.HandleFunc("/api/catalog/{id}/stock", h.metricsMiddleware("/api/catalog/{id}/stock", AdminMiddleware(h.UpdateStock))).Methods("PATCH")
}

// RegisterHealthCheck registers health check endpoint
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
		})
	}).Methods("GET")
}

// BrowseCatalog handles GET /api/catalog
func (h *CatalogHandler) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := query.BrowseCatalogQuery{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Brand:    params.Get("brand"),
		Size:     params.Get("size"),
		Color:    params.Get("color"),
		SortBy:   params.Get("sort"),
	}

	result, err := h.browseHandler.Handle(q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSortMode) {
			respondJSON(w, http.StatusBadRequest, Response{
				Success: false,
				Error:   err.Error(),
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to browse catalog")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to browse catalog",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// GetStats handles GET /api/catalog/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get catalog stats")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get catalog stats",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    stats,
	})
}

// GetProduct handles GET /api/catalog/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: uint(id)})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// CreateProduct handles POST /api/catalog
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Category:    req.Category,
		Brand:       req.Brand,
		Size:        req.Size,
		Color:       req.Color,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/catalog/{id}
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:          uint(id),
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Category:    req.Category,
		Brand:       req.Brand,
		Size:        req.Size,
		Color:       req.Color,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/catalog/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: uint(id)}); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.updateProductsMetric()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// UpdateStock handles PATCH /api/catalog/{id}/stock
func (h *CatalogHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
		})
		return
	}

	var req struct {
		Stock int `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateStockCommand{ProductID: uint(id), Stock: req.Stock}
	if err := h.updateStockHandler.Handle(cmd); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update stock")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Stock updated successfully",
	})
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Price       int64    `json:"price"`
	Stock       int      `json:"stock"`
	ImageURL    string   `json:"image_url"`
}

func (h *CatalogHandler) updateProductsMetric() {
	if count, err := h.repo.Count(); err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
