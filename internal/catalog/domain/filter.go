package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Sort modes accepted by FilterSpec.SortBy
const (
	SortNewest    = "newest"
	SortPriceLow  = "priceLow"
	SortPriceHigh = "priceHigh"
	SortPopular   = "popular" // stock as a popularity proxy
)

// ErrInvalidSortMode is returned when FilterSpec.SortBy is not a known mode.
// An unknown mode errors instead of silently falling back to newest.
var ErrInvalidSortMode = fmt.Errorf("invalid sort mode")

// FilterSpec describes one catalog view: a free-text search, optional
// exact-match constraints and a sort mode. Empty string means no constraint.
type FilterSpec struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	SortBy   string `json:"sort_by"`
}

// Validate checks that the filter carries a known sort mode
func (f FilterSpec) Validate() error {
	switch f.SortBy {
	case SortNewest, SortPriceLow, SortPriceHigh, SortPopular:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSortMode, f.SortBy)
}

// Apply narrows and orders products according to the filter. The input slice is
// never mutated; the result is always a fresh slice. Filtering runs as a
// pipeline: search, then exact-match constraints, then a stable sort.
func Apply(products []Product, spec FilterSpec) ([]Product, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesSearch(p, spec.Search) && matchesConstraints(p, spec) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, spec.SortBy)
	return filtered, nil
}

// matchesSearch reports whether the product matches the free-text query.
// The match is a case-insensitive substring check against name, description
// and every tag. An empty query matches everything.
func matchesSearch(p Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesConstraints applies the exact-match filters. Constraints compare
// case-sensitively; an empty constraint is a no-op.
func matchesConstraints(p Product, spec FilterSpec) bool {
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}
	if spec.Brand != "" && p.Brand != spec.Brand {
		return false
	}
	if spec.Size != "" && p.Size != spec.Size {
		return false
	}
	if spec.Color != "" && p.Color != spec.Color {
		return false
	}
	return true
}

// sortProducts orders the slice in place. The sort is stable so products
// with equal keys keep their post-filter relative order.
func sortProducts(products []Product, sortBy string) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Stock > products[j].Stock
		})
	}
}
