package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/raritone/storefront/pkg/logger"
)

// CatalogProduct is the catalog view the cart needs to snapshot a line item
type CatalogProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url"`
}

// CatalogClient calls the catalog service over HTTP. Trace context is
// propagated through the otelhttp transport.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a new catalog service client
func NewCatalogClient(baseURL string) *CatalogClient {
	logger.Logger.Info().
		Str("base_url", baseURL).
		Msg("Catalog client initialized")

	return &CatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   3 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetProduct fetches a product by ID for add-to-cart snapshotting
func (c *CatalogClient) GetProduct(ctx context.Context, productID uint) (*CatalogProduct, error) {
	url := fmt.Sprintf("%s/api/catalog/%d", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call catalog service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var envelope struct {
		Success bool           `json:"success"`
		Data    CatalogProduct `json:"data"`
		Error   string         `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("catalog service error: %s", envelope.Error)
	}

	return &envelope.Data, nil
}
