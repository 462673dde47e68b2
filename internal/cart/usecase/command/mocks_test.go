package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/raritone/storefront/internal/cart/client"
	"github.com/raritone/storefront/internal/cart/domain"
	"github.com/raritone/storefront/kafka"
)

type mockRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	err   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{carts: make(map[string]*domain.Cart)}
}

func (m *mockRepository) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	copied := *cart
	copied.Items = append([]domain.LineItem(nil), cart.Items...)
	return &copied, nil
}

func (m *mockRepository) UpsertCart(_ context.Context, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	copied := *cart
	copied.Items = append([]domain.LineItem(nil), cart.Items...)
	m.carts[cart.UserID] = &copied
	return nil
}

func (m *mockRepository) DeleteCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.carts, userID)
	return nil
}

type mockProductSource struct {
	products map[uint]*client.CatalogProduct
	err      error
}

func (m *mockProductSource) GetProduct(_ context.Context, productID uint) (*client.CatalogProduct, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	return product, nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []kafka.OrderPlacedEvent
	err    error
}

func (m *mockPublisher) PublishOrderPlaced(_ context.Context, event kafka.OrderPlacedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}
