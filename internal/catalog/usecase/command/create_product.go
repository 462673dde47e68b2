package command

import (
	"fmt"
	"time"

	"github.com/raritone/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
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

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cmd.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Tags:        cmd.Tags,
		Category:    cmd.Category,
		Brand:       cmd.Brand,
		Size:        cmd.Size,
		Color:       cmd.Color,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
		ImageURL:    cmd.ImageURL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
