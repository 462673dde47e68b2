package query

import (
	"fmt"

	"github.com/raritone/storefront/internal/catalog/domain"
)

// BrowseCatalogQuery represents one storefront catalog view: search text,
// exact-match filters and a sort mode.
type BrowseCatalogQuery struct {
	Search   string
	Category string
	Brand    string
	Size     string
	Color    string
	SortBy   string
}

// BrowseCatalogResult carries the filtered view plus the total catalog size,
// so the storefront can render "N of M products shown".
type BrowseCatalogResult struct {
	Products []domain.Product `json:"products"`
	Shown    int              `json:"shown"`
	Total    int              `json:"total"`
}

// BrowseCatalogHandler handles catalog browse queries
type BrowseCatalogHandler struct {
	repo domain.ProductRepository
}

// NewBrowseCatalogHandler creates a new browse catalog handler
func NewBrowseCatalogHandler(repo domain.ProductRepository) *BrowseCatalogHandler {
	return &BrowseCatalogHandler{repo: repo}
}

// Handle loads the full catalog and applies the filter pipeline. An empty
// result is a normal outcome, not an error.
func (h *BrowseCatalogHandler) Handle(q BrowseCatalogQuery) (*BrowseCatalogResult, error) {
	spec := domain.FilterSpec{
		Search:   q.Search,
		Category: q.Category,
		Brand:    q.Brand,
		Size:     q.Size,
		Color:    q.Color,
		SortBy:   q.SortBy,
	}
	if spec.SortBy == "" {
		spec.SortBy = domain.SortNewest
	}

	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	filtered, err := domain.Apply(products, spec)
	if err != nil {
		return nil, err
	}

	return &BrowseCatalogResult{
		Products: filtered,
		Shown:    len(filtered),
		Total:    len(products),
	}, nil
}
