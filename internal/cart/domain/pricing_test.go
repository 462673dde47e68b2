package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceExactBreakdown(t *testing.T) {
	cfg := DefaultPricingConfig()

	result, err := cfg.Price([]LineItem{
		{ProductID: 1, Price: 500, Quantity: 2},
		{ProductID: 2, Price: 750, Quantity: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1750), result.Subtotal)
	assert.Equal(t, int64(200), result.Shipping)
	assert.Equal(t, int64(315), result.Tax) // round(1750 * 0.18)
	assert.Equal(t, int64(2265), result.Total)
	assert.Equal(t, int64(250), result.AmountToFreeShipping)
}

func TestPriceFreeShippingBoundary(t *testing.T) {
	cfg := DefaultPricingConfig()

	tests := []struct {
		name         string
		price        int64
		wantShipping int64
		wantToFree   int64
	}{
		{"exactly at threshold ships free", 2000, 0, 0},
		{"one below threshold pays the fee", 1999, 200, 1},
		{"above threshold ships free", 2001, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := cfg.Price([]LineItem{{ProductID: 1, Price: tt.price, Quantity: 1}})
			require.NoError(t, err)

			assert.Equal(t, tt.wantShipping, result.Shipping)
			assert.Equal(t, tt.wantToFree, result.AmountToFreeShipping)
		})
	}
}

func TestPriceTotalAlwaysExact(t *testing.T) {
	cfg := DefaultPricingConfig()

	items := []LineItem{
		{ProductID: 1, Price: 333, Quantity: 3},
		{ProductID: 2, Price: 101, Quantity: 7},
		{ProductID: 3, Price: 59, Quantity: 1},
	}

	result, err := cfg.Price(items)
	require.NoError(t, err)

	assert.Equal(t, result.Subtotal+result.Shipping+result.Tax, result.Total)
}

func TestPriceEmptyCartIsAllZero(t *testing.T) {
	cfg := DefaultPricingConfig()

	result, err := cfg.Price(nil)
	require.NoError(t, err)

	// An empty cart has nothing to ship, so the flat fee does not apply
	assert.Equal(t, int64(0), result.Subtotal)
	assert.Equal(t, int64(0), result.Shipping)
	assert.Equal(t, int64(0), result.Tax)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, cfg.FreeShippingThreshold, result.AmountToFreeShipping)
}

func TestPriceRejectsInvalidLineItems(t *testing.T) {
	cfg := DefaultPricingConfig()

	tests := []struct {
		name string
		item LineItem
	}{
		{"negative price", LineItem{ProductID: 1, Price: -100, Quantity: 1}},
		{"zero quantity", LineItem{ProductID: 1, Price: 100, Quantity: 0}},
		{"negative quantity", LineItem{ProductID: 1, Price: 100, Quantity: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.Price([]LineItem{tt.item})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLineItem)
		})
	}
}

func TestPriceIsDeterministic(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: 1, Price: 1234, Quantity: 2},
		{ProductID: 2, Price: 99, Quantity: 5},
	}

	first, err := cfg.Price(items)
	require.NoError(t, err)
	second, err := cfg.Price(items)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPriceCustomConfig(t *testing.T) {
	cfg := PricingConfig{
		ShippingFee:           500,
		FreeShippingThreshold: 10000,
		TaxRateBasisPoints:    500, // 5%
	}

	result, err := cfg.Price([]LineItem{{ProductID: 1, Price: 1000, Quantity: 3}})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), result.Subtotal)
	assert.Equal(t, int64(500), result.Shipping)
	assert.Equal(t, int64(150), result.Tax)
	assert.Equal(t, int64(3650), result.Total)
	assert.Equal(t, int64(7000), result.AmountToFreeShipping)
}
