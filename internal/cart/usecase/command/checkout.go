package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/raritone/storefront/internal/cart/domain"
	"github.com/raritone/storefront/kafka"
)

// OrderPublisher emits the order event that downstream services consume.
// Payment and fulfilment live behind this boundary.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CheckoutCommand finalizes a user's cart
type CheckoutCommand struct {
	UserID string
}

// CheckoutResult is returned to the storefront once the order is placed
type CheckoutResult struct {
	OrderID string               `json:"order_id"`
	Pricing domain.PricingResult `json:"pricing"`
}

// CheckoutHandler handles checkout command
type CheckoutHandler struct {
	repo      domain.CartRepository
	publisher OrderPublisher
	pricing   domain.PricingConfig
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(repo domain.CartRepository, publisher OrderPublisher, pricing domain.PricingConfig) *CheckoutHandler {
	return &CheckoutHandler{repo: repo, publisher: publisher, pricing: pricing}
}

// Handle prices the cart, publishes the order event and clears the cart.
// An empty cart cannot be checked out.
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	if cmd.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	cart, err := h.repo.GetCart(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, fmt.Errorf("cannot checkout an empty cart")
	}

	pricing, err := h.pricing.Price(cart.Items)
	if err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	items := make([]kafka.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, kafka.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.Size,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	event := kafka.OrderPlacedEvent{
		OrderID:  orderID,
		UserID:   cmd.UserID,
		Items:    items,
		Subtotal: pricing.Subtotal,
		Shipping: pricing.Shipping,
		Tax:      pricing.Tax,
		Total:    pricing.Total,
		Currency: "INR",
	}
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish order: %w", err)
	}

	if err := h.repo.DeleteCart(ctx, cmd.UserID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	return &CheckoutResult{OrderID: orderID, Pricing: pricing}, nil
}
