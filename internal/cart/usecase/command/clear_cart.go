package command

import (
	"context"
	"fmt"

	"github.com/raritone/storefront/internal/cart/domain"
)

// ClearCartCommand empties a user's cart
type ClearCartCommand struct {
	UserID string
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	repo domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(repo domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{repo: repo}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if cmd.UserID == "" {
		return fmt.Errorf("user id is required")
	}

	if err := h.repo.DeleteCart(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
