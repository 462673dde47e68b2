package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raritone/storefront/internal/catalog/domain"
)

type mockRepository struct {
	products []domain.Product
	err      error
}

func (m *mockRepository) Create(*domain.Product) error { return m.err }

func (m *mockRepository) FindByID(id uint) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, fmt.Errorf("record not found")
}

func (m *mockRepository) FindAll() ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockRepository) Update(*domain.Product) error { return m.err }
func (m *mockRepository) Delete(uint) error            { return m.err }

func (m *mockRepository) Count() (int64, error) {
	return int64(len(m.products)), m.err
}

func (m *mockRepository) UpdateStock(id uint, stock int) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Stock = stock
			return nil
		}
	}
	return fmt.Errorf("record not found")
}

func catalogFixture() []domain.Product {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Oxford Shirt", Category: "Shirts", Brand: "Raritone", Price: 2400, Stock: 8, CreatedAt: base},
		{ID: 2, Name: "Chino Trousers", Category: "Trousers", Brand: "Raritone", Price: 1900, Stock: 0, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Canvas Tote", Category: "Accessories", Brand: "Northline", Price: 700, Stock: 15, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestBrowseCatalogReturnsShownAndTotal(t *testing.T) {
	repo := &mockRepository{products: catalogFixture()}
	handler := NewBrowseCatalogHandler(repo)

	result, err := handler.Handle(BrowseCatalogQuery{Category: "Shirts"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Shown)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Products, 1)
	assert.Equal(t, uint(1), result.Products[0].ID)
}

func TestBrowseCatalogDefaultsToNewest(t *testing.T) {
	repo := &mockRepository{products: catalogFixture()}
	handler := NewBrowseCatalogHandler(repo)

	result, err := handler.Handle(BrowseCatalogQuery{})
	require.NoError(t, err)

	require.Len(t, result.Products, 3)
	assert.Equal(t, uint(3), result.Products[0].ID)
	assert.Equal(t, uint(1), result.Products[2].ID)
}

func TestBrowseCatalogEmptyResultIsNotAnError(t *testing.T) {
	repo := &mockRepository{products: catalogFixture()}
	handler := NewBrowseCatalogHandler(repo)

	result, err := handler.Handle(BrowseCatalogQuery{Search: "parka"})
	require.NoError(t, err)

	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.Shown)
	assert.Equal(t, 3, result.Total)
}

func TestBrowseCatalogRejectsUnknownSortMode(t *testing.T) {
	repo := &mockRepository{products: catalogFixture()}
	handler := NewBrowseCatalogHandler(repo)

	_, err := handler.Handle(BrowseCatalogQuery{SortBy: "trending"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSortMode)
}

func TestBrowseCatalogPropagatesRepositoryError(t *testing.T) {
	repo := &mockRepository{err: fmt.Errorf("connection refused")}
	handler := NewBrowseCatalogHandler(repo)

	_, err := handler.Handle(BrowseCatalogQuery{})
	require.Error(t, err)
}

func TestGetStats(t *testing.T) {
	repo := &mockRepository{products: catalogFixture()}
	handler := NewGetStatsHandler(repo)

	stats, err := handler.Handle(GetStatsQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(2), stats.InStock)
	assert.Equal(t, int64(1), stats.OutOfStock)
	assert.Equal(t, int64(23), stats.TotalStock)
	assert.Equal(t, int64(700), stats.MinPrice)
	assert.Equal(t, int64(2400), stats.MaxPrice)
	assert.ElementsMatch(t, []string{"Shirts", "Trousers", "Accessories"}, stats.Categories)
	assert.ElementsMatch(t, []string{"Raritone", "Northline"}, stats.Brands)
}
