package command

import (
	"fmt"

	"github.com/raritone/storefront/internal/catalog/domain"
)

// UpdateStockCommand represents the command to update product stock
type UpdateStockCommand struct {
	ProductID uint
	Stock     int
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	repo domain.ProductRepository
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(repo domain.ProductRepository) *UpdateStockHandler {
	return &UpdateStockHandler{repo: repo}
}

// Handle executes the update stock command
func (h *UpdateStockHandler) Handle(cmd UpdateStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("invalid product id")
	}

	if cmd.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}

	if _, err := h.repo.FindByID(cmd.ProductID); err != nil {
		return fmt.Errorf("product not found")
	}

	if err := h.repo.UpdateStock(cmd.ProductID, cmd.Stock); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}

// DecrementStockCommand reduces stock after a purchase event
type DecrementStockCommand struct {
	ProductID uint
	Quantity  int
}

// DecrementStockHandler handles stock decrements from order events
type DecrementStockHandler struct {
	repo domain.ProductRepository
}

// NewDecrementStockHandler creates a new decrement stock handler
func NewDecrementStockHandler(repo domain.ProductRepository) *DecrementStockHandler {
	return &DecrementStockHandler{repo: repo}
}

// Handle executes the decrement; stock never goes below zero
func (h *DecrementStockHandler) Handle(cmd DecrementStockCommand) error {
	if cmd.ProductID == 0 {
		return fmt.Errorf("invalid product id")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	product, err := h.repo.FindByID(cmd.ProductID)
	if err != nil {
		return fmt.Errorf("product not found")
	}

	stock := product.Stock - cmd.Quantity
	if stock < 0 {
		stock = 0
	}

	if err := h.repo.UpdateStock(cmd.ProductID, stock); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}
