package domain

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: 1, Name: "Linen Shirt", Description: "Breathable summer shirt", Tags: pq.StringArray{"summer", "linen"}, Category: "Shirts", Brand: "Raritone", Size: "M", Color: "White", Price: 1500, Stock: 12, CreatedAt: base.Add(24 * time.Hour)},
		{ID: 2, Name: "Denim Jacket", Description: "Classic blue denim", Tags: pq.StringArray{"denim", "outerwear"}, Category: "Jackets", Brand: "Raritone", Size: "L", Color: "Blue", Price: 3200, Stock: 5, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, Name: "Wool Scarf", Description: "Warm winter scarf", Tags: pq.StringArray{"winter", "wool"}, Category: "Accessories", Brand: "Northline", Size: "", Color: "Grey", Price: 800, Stock: 20, CreatedAt: base},
		{ID: 4, Name: "Linen Trousers", Description: "Relaxed fit trousers", Tags: pq.StringArray{"summer", "linen"}, Category: "Trousers", Brand: "Northline", Size: "M", Color: "Beige", Price: 1500, Stock: 12, CreatedAt: base.Add(72 * time.Hour)},
	}
}

func TestApplySearchMatchesNameDescriptionAndTags(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name    string
		search  string
		wantIDs []uint
	}{
		{"matches name", "shirt", []uint{1}},
		{"matches description", "warm winter", []uint{3}},
		{"matches tag", "linen", []uint{4, 1}}, // newest first
		{"case insensitive", "DENIM", []uint{2}},
		{"no match", "velvet", []uint{}},
		{"empty query keeps everything", "", []uint{4, 2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(products, FilterSpec{Search: tt.search, SortBy: SortNewest})
			require.NoError(t, err)

			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplyExactMatchConstraints(t *testing.T) {
	products := testProducts()

	got, err := Apply(products, FilterSpec{Category: "Jackets", SortBy: SortNewest})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// Exact match is case-sensitive, not substring
	got, err = Apply(products, FilterSpec{Category: "jackets", SortBy: SortNewest})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Apply(products, FilterSpec{Brand: "Northline", Size: "M", SortBy: SortNewest})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, uint(4), got[0].ID)
}

func TestApplyConstraintsAreMonotonic(t *testing.T) {
	products := testProducts()

	broad, err := Apply(products, FilterSpec{Search: "linen", SortBy: SortNewest})
	require.NoError(t, err)

	narrow, err := Apply(products, FilterSpec{Search: "linen", Category: "Shirts", SortBy: SortNewest})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(narrow), len(broad))
}

func TestApplySortModes(t *testing.T) {
	products := testProducts()

	tests := []struct {
		sortBy  string
		wantIDs []uint
	}{
		{SortNewest, []uint{4, 2, 1, 3}},
		{SortPriceLow, []uint{3, 1, 4, 2}},
		{SortPriceHigh, []uint{2, 1, 4, 3}},
		{SortPopular, []uint{3, 1, 4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			got, err := Apply(products, FilterSpec{SortBy: tt.sortBy})
			require.NoError(t, err)

			ids := make([]uint, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplySortIsStable(t *testing.T) {
	products := testProducts()

	// Products 1 and 4 tie on price (1500) and on stock (12); their input
	// order must survive both sorts.
	got, err := Apply(products, FilterSpec{SortBy: SortPriceLow})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, uint(1), got[1].ID)
	assert.Equal(t, uint(4), got[2].ID)

	got, err = Apply(products, FilterSpec{SortBy: SortPopular})
	require.NoError(t, err)
	assert.Equal(t, uint(1), got[1].ID)
	assert.Equal(t, uint(4), got[2].ID)
}

func TestApplyIsDeterministicAndDoesNotMutateInput(t *testing.T) {
	products := testProducts()
	spec := FilterSpec{Search: "linen", SortBy: SortPriceHigh}

	first, err := Apply(products, spec)
	require.NoError(t, err)
	second, err := Apply(products, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, testProducts(), products, "input slice must not be reordered")
}

func TestApplyEmptyInput(t *testing.T) {
	got, err := Apply(nil, FilterSpec{SortBy: SortNewest})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApplyRejectsUnknownSortMode(t *testing.T) {
	_, err := Apply(testProducts(), FilterSpec{SortBy: "cheapest"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSortMode)
}
