package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/raritone/storefront/internal/cart/cache"
	"github.com/raritone/storefront/internal/cart/domain"
	"github.com/raritone/storefront/pkg/logger"
)

// GetCartQuery represents the query to load a user's cart
type GetCartQuery struct {
	UserID string
}

// GetCartHandler handles get cart query with a read-through cache
type GetCartHandler struct {
	repo  domain.CartRepository
	cache cache.CartCache
	sfg   singleflight.Group // collapses concurrent cache misses per user
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(repo domain.CartRepository, cartCache cache.CartCache) *GetCartHandler {
	return &GetCartHandler{repo: repo, cache: cartCache}
}

// Handle executes the get cart query. A user without a stored cart gets an
// empty cart, not an error.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*domain.Cart, error) {
	if q.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	v, err, _ := h.sfg.Do(q.UserID, func() (interface{}, error) {
		if h.cache != nil {
			cart, err := h.cache.Get(ctx, q.UserID)
			if err == nil {
				return cart, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				logger.Warn(ctx).Err(err).Msg("Cart cache read failed")
			}
		}

		cart, err := h.repo.GetCart(ctx, q.UserID)
		if errors.Is(err, domain.ErrCartNotFound) {
			return &domain.Cart{
				UserID:    q.UserID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if err != nil {
			return nil, err
		}

		if h.cache != nil {
			go func() {
				if err := h.cache.Set(context.Background(), q.UserID, cart); err != nil {
					logger.Logger.Warn().Err(err).Msg("Cart cache write failed")
				}
			}()
		}

		return cart, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}
