package command

import (
	"context"
	"fmt"
	"time"

	"github.com/raritone/storefront/internal/cart/domain"
)

// RemoveItemCommand removes one (product, size) line from a cart
type RemoveItemCommand struct {
	UserID    string
	ProductID uint
	Size      string
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	repo domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.Cart, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	cart, err := h.repo.GetCart(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveItem(cmd.ProductID, cmd.Size) {
		return nil, fmt.Errorf("line item not found in cart")
	}
	cart.UpdatedAt = time.Now()

	if err := h.repo.UpsertCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, nil
}
