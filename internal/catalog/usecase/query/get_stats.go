package query

import (
	"fmt"

	"github.com/raritone/storefront/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats backs the storefront filter sidebar: counts, price range and
// the distinct category/brand labels available for exact-match filters.
type CatalogStats struct {
	TotalProducts int64    `json:"total_products"`
	InStock       int64    `json:"in_stock"`
	OutOfStock    int64    `json:"out_of_stock"`
	TotalStock    int64    `json:"total_stock"`
	MinPrice      int64    `json:"min_price"`
	MaxPrice      int64    `json:"max_price"`
	Categories    []string `json:"categories"`
	Brands        []string `json:"brands"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(query GetStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats := &CatalogStats{
		TotalProducts: int64(len(products)),
		Categories:    []string{},
		Brands:        []string{},
	}

	seenCategories := make(map[string]bool)
	seenBrands := make(map[string]bool)

	for i, product := range products {
		if product.IsAvailable() {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		stats.TotalStock += int64(product.Stock)

		if i == 0 || product.Price < stats.MinPrice {
			stats.MinPrice = product.Price
		}
		if product.Price > stats.MaxPrice {
			stats.MaxPrice = product.Price
		}

		if product.Category != "" && !seenCategories[product.Category] {
			seenCategories[product.Category] = true
			stats.Categories = append(stats.Categories, product.Category)
		}
		if product.Brand != "" && !seenBrands[product.Brand] {
			seenBrands[product.Brand] = true
			stats.Brands = append(stats.Brands, product.Brand)
		}
	}

	return stats, nil
}
