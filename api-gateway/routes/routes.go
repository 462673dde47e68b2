package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/raritone/storefront/api-gateway/config"
	"github.com/raritone/storefront/api-gateway/health"
	"github.com/raritone/storefront/api-gateway/middleware"
	"github.com/raritone/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool // Requires authentication
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public browsing. Admin writes under the same prefix are enforced
	// by the catalog service itself.
	{
		Prefix:      "/api/catalog",
		ServiceName: "catalog",
		Description: "Product browsing, search and admin management",
		RequireAuth: false,
	},

	// Cart routes are always per-user
	{
		Prefix:      "/api/cart",
		ServiceName: "cart",
		Description: "Shopping cart, pricing and checkout",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager, redisClient *redis.Client) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllServices(ctx))
	})

	// Gateway internals: load balancer and circuit breaker state
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			lbStats[name] = lb.GetStats()
		}

		return c.JSON(fiber.Map{
			"load_balancers":   lbStats,
			"circuit_breakers": cbManager.GetAllStats(),
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Checkout gets a stricter per-user rate limit
	if redisClient != nil {
		app.Post("/api/cart/checkout",
			middleware.AuthMiddleware(),
			middleware.CheckoutRateLimiter(redisClient),
			func(c *fiber.Ctx) error {
				return reverseProxy.ProxyRequest(c, "cart")
			},
		)
	}

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else {
		// Optional auth lets the rate limiter key by user when a token is present
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, append(middlewares, handler)...)
}
