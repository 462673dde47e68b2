package query

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raritone/storefront/internal/cart/cache"
	"github.com/raritone/storefront/internal/cart/domain"
)

type mockRepository struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	calls int
	err   error
}

func (m *mockRepository) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[userID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockRepository) UpsertCart(_ context.Context, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockRepository) DeleteCart(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}

type mockCache struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newMockCache() *mockCache {
	return &mockCache{carts: make(map[string]*domain.Cart)}
}

func (m *mockCache) Get(_ context.Context, userID string) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[userID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return cart, nil
}

func (m *mockCache) Set(_ context.Context, userID string, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[userID] = cart
	return nil
}

func (m *mockCache) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
	return nil
}

func TestGetCartReturnsStoredCart(t *testing.T) {
	stored := &domain.Cart{
		ID:     "c1",
		UserID: "u1",
		Items:  []domain.LineItem{{ProductID: 7, Price: 1500, Quantity: 2}},
	}
	repo := &mockRepository{carts: map[string]*domain.Cart{"u1": stored}}
	handler := NewGetCartHandler(repo, newMockCache())

	cart, err := handler.Handle(context.Background(), GetCartQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)
	assert.Len(t, cart.Items, 1)
}

func TestGetCartReturnsEmptyCartForNewUser(t *testing.T) {
	repo := &mockRepository{carts: map[string]*domain.Cart{}}
	handler := NewGetCartHandler(repo, newMockCache())

	cart, err := handler.Handle(context.Background(), GetCartQuery{UserID: "u2"})
	require.NoError(t, err)
	assert.Equal(t, "u2", cart.UserID)
	assert.True(t, cart.IsEmpty())
}

func TestGetCartServesFromCache(t *testing.T) {
	repo := &mockRepository{carts: map[string]*domain.Cart{}}
	cartCache := newMockCache()
	cached := &domain.Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cartCache.Set(context.Background(), "u1", cached))

	handler := NewGetCartHandler(repo, cartCache)

	cart, err := handler.Handle(context.Background(), GetCartQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)
	assert.Equal(t, 0, repo.calls, "cache hit must not reach the repository")
}

func TestGetCartWorksWithoutCache(t *testing.T) {
	stored := &domain.Cart{ID: "c1", UserID: "u1"}
	repo := &mockRepository{carts: map[string]*domain.Cart{"u1": stored}}
	handler := NewGetCartHandler(repo, nil)

	cart, err := handler.Handle(context.Background(), GetCartQuery{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)
}

func TestPriceCart(t *testing.T) {
	stored := &domain.Cart{
		ID:     "c1",
		UserID: "u1",
		Items: []domain.LineItem{
			{ProductID: 1, Price: 500, Quantity: 2},
			{ProductID: 2, Price: 750, Quantity: 1},
		},
	}
	repo := &mockRepository{carts: map[string]*domain.Cart{"u1": stored}}
	handler := NewPriceCartHandler(repo, domain.DefaultPricingConfig())

	result, err := handler.Handle(context.Background(), PriceCartQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, int64(1750), result.Subtotal)
	assert.Equal(t, int64(200), result.Shipping)
	assert.Equal(t, int64(315), result.Tax)
	assert.Equal(t, int64(2265), result.Total)
	assert.Equal(t, int64(250), result.AmountToFreeShipping)
}

func TestPriceCartForUserWithoutCart(t *testing.T) {
	repo := &mockRepository{carts: map[string]*domain.Cart{}}
	handler := NewPriceCartHandler(repo, domain.DefaultPricingConfig())

	result, err := handler.Handle(context.Background(), PriceCartQuery{UserID: "u1"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, int64(2000), result.AmountToFreeShipping)
}
