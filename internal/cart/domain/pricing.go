package domain

// PricingConfig holds the pricing rules. All amounts are currency minor
// units; the tax rate is in basis points so tax math stays integral.
type PricingConfig struct {
	ShippingFee           int64
	FreeShippingThreshold int64
	TaxRateBasisPoints    int64
}

// DefaultPricingConfig returns the storefront defaults: 200 flat shipping,
// free shipping from 2000 and 18% tax.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		ShippingFee:           200,
		FreeShippingThreshold: 2000,
		TaxRateBasisPoints:    1800,
	}
}

// PricingResult is the derived cart total breakdown. Total is always exactly
// Subtotal + Shipping + Tax.
type PricingResult struct {
	Subtotal             int64 `json:"subtotal"`
	Shipping             int64 `json:"shipping"`
	Tax                  int64 `json:"tax"`
	Total                int64 `json:"total"`
	AmountToFreeShipping int64 `json:"amount_to_free_shipping"`
}

// Price computes the cart totals from line items. Pure and deterministic:
// integer arithmetic only, tax rounded half-up once on the subtotal.
// Invalid line items are rejected rather than normalized.
func (cfg PricingConfig) Price(items []LineItem) (PricingResult, error) {
	var subtotal int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return PricingResult{}, err
		}
		subtotal += item.Price * int64(item.Quantity)
	}

	// Flat fee below the threshold, strict comparison: exactly at the
	// threshold ships free. An empty cart has nothing to ship.
	var shipping int64
	if len(items) > 0 && subtotal < cfg.FreeShippingThreshold {
		shipping = cfg.ShippingFee
	}

	// Round half-up, applied once so per-line rounding can never drift
	tax := (subtotal*cfg.TaxRateBasisPoints + 5000) / 10000

	remaining := cfg.FreeShippingThreshold - subtotal
	if remaining < 0 {
		remaining = 0
	}

	return PricingResult{
		Subtotal:             subtotal,
		Shipping:             shipping,
		Tax:                  tax,
		Total:                subtotal + shipping + tax,
		AmountToFreeShipping: remaining,
	}, nil
}
