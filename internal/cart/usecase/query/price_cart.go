package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/raritone/storefront/internal/cart/domain"
)

// PriceCartQuery represents the query to price a user's cart
type PriceCartQuery struct {
	UserID string
}

// PriceCartHandler handles cart pricing query
type PriceCartHandler struct {
	repo    domain.CartRepository
	pricing domain.PricingConfig
}

// NewPriceCartHandler creates a new price cart handler
func NewPriceCartHandler(repo domain.CartRepository, pricing domain.PricingConfig) *PriceCartHandler {
	return &PriceCartHandler{repo: repo, pricing: pricing}
}

// Handle loads the cart and computes its totals. A user without a cart gets
// the empty-cart breakdown.
func (h *PriceCartHandler) Handle(ctx context.Context, q PriceCartQuery) (*domain.PricingResult, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	cart, err := h.repo.GetCart(ctx, q.UserID)
	if errors.Is(err, domain.ErrCartNotFound) {
		cart = &domain.Cart{UserID: q.UserID}
	} else if err != nil {
		return nil, err
	}

	result, err := h.pricing.Price(cart.Items)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
