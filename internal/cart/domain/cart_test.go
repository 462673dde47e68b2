package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesSameProductAndSize(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}

	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Name: "Linen Shirt", Price: 1500, Size: "M", Quantity: 1}))
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Name: "Linen Shirt", Price: 1500, Size: "M", Quantity: 2}))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemKeepsDifferentSizesDistinct(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}

	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "M", Quantity: 1}))
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "L", Quantity: 1}))

	assert.Len(t, cart.Items, 2)
}

func TestAddItemRejectsInvalidItems(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}

	err := cart.AddItem(LineItem{ProductID: 7, Price: -1, Quantity: 1})
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	err = cart.AddItem(LineItem{ProductID: 7, Price: 100, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	assert.True(t, cart.IsEmpty())
}

func TestAddItemSnapshotSurvivesCatalogChange(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Name: "Linen Shirt", Price: 1500, Size: "M", Quantity: 1}))

	// A later add at a new catalog price merges quantity but the stored
	// snapshot price is what the first add captured.
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Name: "Linen Shirt", Price: 1800, Size: "M", Quantity: 1}))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1500), cart.Items[0].Price)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestSetQuantityToZeroRemovesLine(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "M", Quantity: 2}))
	require.NoError(t, cart.AddItem(LineItem{ProductID: 8, Price: 900, Size: "", Quantity: 1}))

	assert.True(t, cart.SetQuantity(7, "M", 0))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(8), cart.Items[0].ProductID)

	// The removed line must not reappear in a pricing call
	result, err := DefaultPricingConfig().Price(cart.Items)
	require.NoError(t, err)
	assert.Equal(t, int64(900), result.Subtotal)
}

func TestSetQuantityNegativeAlsoRemoves(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "M", Quantity: 2}))

	assert.True(t, cart.SetQuantity(7, "M", -3))
	assert.True(t, cart.IsEmpty())
}

func TestSetQuantityUnknownLine(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "M", Quantity: 2}))

	assert.False(t, cart.SetQuantity(7, "L", 1), "same product, different size is a different line")
	assert.False(t, cart.SetQuantity(9, "M", 1))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{ID: "c1", UserID: "u1"}
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "M", Quantity: 1}))
	require.NoError(t, cart.AddItem(LineItem{ProductID: 7, Price: 1500, Size: "L", Quantity: 1}))

	assert.True(t, cart.RemoveItem(7, "M"))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "L", cart.Items[0].Size)
}
