package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raritone/storefront/internal/cart/client"
	"github.com/raritone/storefront/internal/cart/domain"
)

func productSourceFixture() *mockProductSource {
	return &mockProductSource{products: map[uint]*client.CatalogProduct{
		7: {ID: 7, Name: "Linen Shirt", Price: 1500, Stock: 10, ImageURL: "/img/linen-shirt.jpg"},
		8: {ID: 8, Name: "Wool Scarf", Price: 800, Stock: 4, ImageURL: "/img/wool-scarf.jpg"},
		9: {ID: 9, Name: "Denim Jacket", Price: 3200, Stock: 0, ImageURL: "/img/denim-jacket.jpg"},
	}}
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	repo := newMockRepository()
	handler := NewAddItemHandler(repo, productSourceFixture())

	cart, err := handler.Handle(context.Background(), AddItemCommand{
		UserID: "u1", ProductID: 7, Size: "M", Quantity: 2,
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, uint(7), item.ProductID)
	assert.Equal(t, "Linen Shirt", item.Name)
	assert.Equal(t, int64(1500), item.Price)
	assert.Equal(t, "/img/linen-shirt.jpg", item.ImageURL)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, 2, item.Quantity)
	assert.NotEmpty(t, cart.ID)
}

func TestAddItemMergesExistingLine(t *testing.T) {
	repo := newMockRepository()
	handler := NewAddItemHandler(repo, productSourceFixture())
	ctx := context.Background()

	_, err := handler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 1})
	require.NoError(t, err)
	cart, err := handler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemDifferentSizesStayDistinct(t *testing.T) {
	repo := newMockRepository()
	handler := NewAddItemHandler(repo, productSourceFixture())
	ctx := context.Background()

	_, err := handler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 1})
	require.NoError(t, err)
	cart, err := handler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "L", Quantity: 1})
	require.NoError(t, err)

	assert.Len(t, cart.Items, 2)
}

func TestAddItemRejectsOutOfStockProduct(t *testing.T) {
	repo := newMockRepository()
	handler := NewAddItemHandler(repo, productSourceFixture())

	_, err := handler.Handle(context.Background(), AddItemCommand{UserID: "u1", ProductID: 9, Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of stock")
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	repo := newMockRepository()
	handler := NewAddItemHandler(repo, productSourceFixture())

	_, err := handler.Handle(context.Background(), AddItemCommand{UserID: "u1", ProductID: 7, Quantity: 0})
	require.Error(t, err)
}

func TestUpdateQuantityToZeroRemovesLine(t *testing.T) {
	repo := newMockRepository()
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	updateHandler := NewUpdateQuantityHandler(repo)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 2})
	require.NoError(t, err)
	_, err = addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 8, Quantity: 1})
	require.NoError(t, err)

	cart, err := updateHandler.Handle(ctx, UpdateQuantityCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 0})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(8), cart.Items[0].ProductID)

	// The stored cart must agree
	stored, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	repo := newMockRepository()
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	updateHandler := NewUpdateQuantityHandler(repo)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 1})
	require.NoError(t, err)

	_, err = updateHandler.Handle(ctx, UpdateQuantityCommand{UserID: "u1", ProductID: 7, Size: "XL", Quantity: 1})
	require.Error(t, err)
}

func TestRemoveItem(t *testing.T) {
	repo := newMockRepository()
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	removeHandler := NewRemoveItemHandler(repo)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 1})
	require.NoError(t, err)

	cart, err := removeHandler.Handle(ctx, RemoveItemCommand{UserID: "u1", ProductID: 7, Size: "M"})
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestClearCart(t *testing.T) {
	repo := newMockRepository()
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	clearHandler := NewClearCartHandler(repo)
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, clearHandler.Handle(ctx, ClearCartCommand{UserID: "u1"}))

	_, err = repo.GetCart(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestCheckoutPublishesOrderAndClearsCart(t *testing.T) {
	repo := newMockRepository()
	publisher := &mockPublisher{}
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	checkoutHandler := NewCheckoutHandler(repo, publisher, domain.DefaultPricingConfig())
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Size: "M", Quantity: 1})
	require.NoError(t, err)
	_, err = addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 8, Quantity: 1})
	require.NoError(t, err)

	result, err := checkoutHandler.Handle(ctx, CheckoutCommand{UserID: "u1"})
	require.NoError(t, err)

	// 1500 + 800 = 2300, above the free shipping threshold
	assert.Equal(t, int64(2300), result.Pricing.Subtotal)
	assert.Equal(t, int64(0), result.Pricing.Shipping)
	assert.Equal(t, int64(414), result.Pricing.Tax)
	assert.Equal(t, int64(2714), result.Pricing.Total)
	assert.NotEmpty(t, result.OrderID)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, result.OrderID, event.OrderID)
	assert.Equal(t, "u1", event.UserID)
	assert.Len(t, event.Items, 2)
	assert.Equal(t, int64(2714), event.Total)

	_, err = repo.GetCart(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestCheckoutEmptyCart(t *testing.T) {
	repo := newMockRepository()
	publisher := &mockPublisher{}
	checkoutHandler := NewCheckoutHandler(repo, publisher, domain.DefaultPricingConfig())

	_, err := checkoutHandler.Handle(context.Background(), CheckoutCommand{UserID: "u1"})
	require.Error(t, err)
	assert.Empty(t, publisher.events)
}

func TestCheckoutKeepsCartWhenPublishFails(t *testing.T) {
	repo := newMockRepository()
	publisher := &mockPublisher{err: assert.AnError}
	addHandler := NewAddItemHandler(repo, productSourceFixture())
	checkoutHandler := NewCheckoutHandler(repo, publisher, domain.DefaultPricingConfig())
	ctx := context.Background()

	_, err := addHandler.Handle(ctx, AddItemCommand{UserID: "u1", ProductID: 7, Quantity: 1})
	require.NoError(t, err)

	_, err = checkoutHandler.Handle(ctx, CheckoutCommand{UserID: "u1"})
	require.Error(t, err)

	cart, err := repo.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}
