package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// BaseURL returns the first instance, used for health checks
func (s ServiceConfig) BaseURL() string {
	if len(s.Instances) == 0 {
		return ""
	}
	return s.Instances[0]
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"catalog": {
				Name:        "catalog-service",
				Instances:   getEnvList("CATALOG_SERVICE_URLS", "http://localhost:8081"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"cart": {
				Name:        "cart-service",
				Instances:   getEnvList("CART_SERVICE_URLS", "http://localhost:8082"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvList reads a comma-separated list of URLs from the environment
func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
