package command

import (
	"context"
	"fmt"
	"time"

	"github.com/raritone/storefront/internal/cart/domain"
)

// UpdateQuantityCommand sets the quantity of one (product, size) line.
// A quantity of zero or less removes the line from the cart.
type UpdateQuantityCommand struct {
	UserID    string
	ProductID uint
	Size      string
	Quantity  int
}

// UpdateQuantityHandler handles quantity update command
type UpdateQuantityHandler struct {
	repo domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(repo domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.Cart, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	cart, err := h.repo.GetCart(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(cmd.ProductID, cmd.Size, cmd.Quantity) {
		return nil, fmt.Errorf("line item not found in cart")
	}
	cart.UpdatedAt = time.Now()

	if err := h.repo.UpsertCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, nil
}
