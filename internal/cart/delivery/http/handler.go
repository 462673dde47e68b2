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

	"github.com/raritone/storefront/internal/cart/cache"
	"github.com/raritone/storefront/internal/cart/usecase/command"
	"github.com/raritone/storefront/internal/cart/usecase/query"
	"github.com/raritone/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addItemHandler        *command.AddItemHandler
	updateQuantityHandler *command.UpdateQuantityHandler
	removeItemHandler     *command.RemoveItemHandler
	clearCartHandler      *command.ClearCartHandler
	checkoutHandler       *command.CheckoutHandler

	// Query handlers
	getCartHandler   *query.GetCartHandler
	priceCartHandler *query.PriceCartHandler

	cache          cache.CartCache
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	checkoutTotal  prometheus.Counter
}

// NewCartHandler creates a new cart handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewCartHandler(
	addItemHandler *command.AddItemHandler,
	updateQuantityHandler *command.UpdateQuantityHandler,
	removeItemHandler *command.RemoveItemHandler,
	clearCartHandler *command.ClearCartHandler,
	checkoutHandler *command.CheckoutHandler,
	getCartHandler *query.GetCartHandler,
	priceCartHandler *query.PriceCartHandler,
	cartCache cache.CartCache,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of requests to cart service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Duration of cart service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Summary metric for percentile calculation (p50, p90, p95, p99)
	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "cart_service_request_duration_summary",
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

	checkoutTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_service_checkouts_total",
			Help: "Total number of successful checkouts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(requestSummary)
	prometheus.MustRegister(checkoutTotal)

	return &CartHandler{
		addItemHandler:        addItemHandler,
		updateQuantityHandler: updateQuantityHandler,
		removeItemHandler:     removeItemHandler,
		clearCartHandler:      clearCartHandler,
		checkoutHandler:       checkoutHandler,
		getCartHandler:        getCartHandler,
		priceCartHandler:      priceCartHandler,
		cache:                 cartCache,
		requestCounter:        requestCounter,
		requestLatency:        requestLatency,
		requestSummary:        requestSummary,
		checkoutTotal:         checkoutTotal,
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
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
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

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	// All cart routes require an authenticated user
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.GetCart))).Methods("GET")
	router.HandleFunc("/api/cart/pricing", h.metricsMiddleware("/api/cart/pricing", AuthMiddleware(h.PriceCart))).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.UpdateQuantity))).Methods("PATCH")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", AuthMiddleware(h.RemoveItem))).Methods("DELETE")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", AuthMiddleware(h.ClearCart))).Methods("DELETE")
	router.HandleFunc("/api/cart/checkout", h.metricsMiddleware("/api/cart/checkout", AuthMiddleware(h.Checkout))).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
func (h *CartHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
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
			Message: "Cart service is healthy",
		})
	}).Methods("GET")
}

// userIDFrom extracts the authenticated user ID placed on the context by AuthMiddleware.
func userIDFrom(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserIDKey).(uint)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(id), 10), true
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	cart, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to get cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to get cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cart,
	})
}

// PriceCart handles GET /api/cart/pricing
func (h *CartHandler) PriceCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	result, err := h.priceCartHandler.Handle(r.Context(), query.PriceCartQuery{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to price cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to price cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

type addItemRequest struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}

	cart, err := h.addItemHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to add item to cart")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.invalidateCache(r, userID)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

type updateQuantityRequest struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantity handles PATCH /api/cart/items
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateQuantityCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}

	cart, err := h.updateQuantityHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to update quantity")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.invalidateCache(r, userID)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    cart,
	})
}

type removeItemRequest struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
}

// RemoveItem handles DELETE /api/cart/items
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.RemoveItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Size:      req.Size,
	}

	cart, err := h.removeItemHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to remove item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.invalidateCache(r, userID)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cart,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	if err := h.clearCartHandler.Handle(r.Context(), command.ClearCartCommand{UserID: userID}); err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	h.invalidateCache(r, userID)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// Checkout handles POST /api/cart/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFrom(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{Success: false, Error: "Unauthorized"})
		return
	}

	result, err := h.checkoutHandler.Handle(r.Context(), command.CheckoutCommand{UserID: userID})
	if err != nil {
		logger.Logger.Error().Err(err).Str("user_id", userID).Msg("Checkout failed")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.checkoutTotal.Inc()
	h.invalidateCache(r, userID)

	logger.Logger.Info().
		Str("user_id", userID).
		Str("order_id", result.OrderID).
		Int64("total", result.Pricing.Total).
		Msg("Order placed")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order placed",
		Data:    result,
	})
}

// invalidateCache drops the cached cart after a mutation. Best effort:
// the cache entry expires on its own if the delete fails.
func (h *CartHandler) invalidateCache(r *http.Request, userID string) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(r.Context(), userID); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		logger.Logger.Warn().Err(err).Str("user_id", userID).Msg("Failed to invalidate cart cache")
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
