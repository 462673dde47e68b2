package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raritone/storefront/internal/cart/client"
	"github.com/raritone/storefront/internal/cart/domain"
)

// ProductSource supplies the catalog snapshot taken at add-to-cart time
type ProductSource interface {
	GetProduct(ctx context.Context, productID uint) (*client.CatalogProduct, error)
}

// AddItemCommand represents the command to add a product to a cart
type AddItemCommand struct {
	UserID    string
	ProductID uint
	Size      string
	Quantity  int
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	repo     domain.CartRepository
	products ProductSource
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.CartRepository, products ProductSource) *AddItemHandler {
	return &AddItemHandler{repo: repo, products: products}
}

// Handle executes the add item command. The product's name, price and image
// are snapshotted into the line item so later catalog edits leave the cart
// untouched.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.Cart, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	product, err := h.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product.Stock <= 0 {
		return nil, fmt.Errorf("product %d is out of stock", cmd.ProductID)
	}

	cart, err := h.repo.GetCart(ctx, cmd.UserID)
	if errors.Is(err, domain.ErrCartNotFound) {
		cart = &domain.Cart{
			ID:        uuid.NewString(),
			UserID:    cmd.UserID,
			CreatedAt: time.Now(),
		}
	} else if err != nil {
		return nil, err
	}

	item := domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Size:      cmd.Size,
		Quantity:  cmd.Quantity,
	}
	if err := cart.AddItem(item); err != nil {
		return nil, err
	}
	cart.UpdatedAt = time.Now()

	if err := h.repo.UpsertCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return cart, nil
}
