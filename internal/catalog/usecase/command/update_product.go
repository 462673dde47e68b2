package command

import (
	"fmt"
	"time"

	"github.com/raritone/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          uint
	Name        string
	Description string
	Tags        []string
	Category    string
	Brand       string
	Size        string
	Color       string
	Price       int64
	Stock       int
	ImageURL    string
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid product id")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	// Update fields if provided
	if cmd.Name != "" {
		product.Name = cmd.Name
	}
	if cmd.Description != "" {
		product.Description = cmd.Description
	}
	if len(cmd.Tags) > 0 {
		product.Tags = cmd.Tags
	}
	if cmd.Category != "" {
		product.Category = cmd.Category
	}
	if cmd.Brand != "" {
		product.Brand = cmd.Brand
	}
	if cmd.Size != "" {
		product.Size = cmd.Size
	}
	if cmd.Color != "" {
		product.Color = cmd.Color
	}
	if cmd.Price >= 0 {
		product.Price = cmd.Price
	}
	if cmd.Stock >= 0 {
		product.Stock = cmd.Stock
	}
	if cmd.ImageURL != "" {
		product.ImageURL = cmd.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
