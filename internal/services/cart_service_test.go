package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazshoppe/internal/models"
)

func setupCart(t *testing.T) (CartService, *fakeProductRepo, *fakeCartRepo, *fakeCache) {
	t.Helper()
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	cache := newFakeCache()
	require.NoError(t, products.Create(&models.Product{Name: "Local Oranges", Price: 35, Unit: "kg", Inventory: 62}))
	require.NoError(t, products.Create(&models.Product{Name: "Organic Milk", Price: 80, Unit: "liter", Inventory: 87}))
	return NewCartService(carts, products, cache), products, carts, cache
}

func TestAddToCart_MergesSameProduct(t *testing.T) {
	svc, _, _, _ := setupCart(t)

	first, err := svc.AddToCart(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddToCart(1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Quantity)

	items, err := svc.GetCart(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCart_RejectsBadInput(t *testing.T) {
	svc, _, _, _ := setupCart(t)

	_, err := svc.AddToCart(1, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddToCart(1, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateQuantity_FlooredAtOne(t *testing.T) {
	svc, _, _, _ := setupCart(t)

	_, err := svc.AddToCart(1, 1, 3)
	require.NoError(t, err)

	item, err := svc.UpdateQuantity(1, 1, -2)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	// Any further decrement keeps the floor.
	item, err = svc.UpdateQuantity(1, 1, -10)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, err = svc.UpdateQuantity(1, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestRemoveItems_EmptySetIsNoOp(t *testing.T) {
	svc, _, _, _ := setupCart(t)

	_, err := svc.AddToCart(1, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(1, 2, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItems(1, nil))

	items, err := svc.GetCart(1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestRemoveItems_DeletesOnlyMatching(t *testing.T) {
	svc, _, _, _ := setupCart(t)

	_, err := svc.AddToCart(1, 1, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(1, 2, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItems(1, []uint{1}))

	items, err := svc.GetCart(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ProductID)
}

func TestCart_MirrorFailureDoesNotFailMutation(t *testing.T) {
	svc, _, carts, cache := setupCart(t)
	cache.failCarts = true

	item, err := svc.AddToCart(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// The database row stands even though the mirror write failed.
	stored, err := carts.GetByUserAndProduct(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)
	assert.Empty(t, cache.carts)
}

func TestCartTotals(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 1, Product: models.Product{Price: 35}},
		{Quantity: 2, Product: models.Product{Price: 80}},
	}

	totalItems, totalPrice := CartTotals(items)
	assert.Equal(t, 3, totalItems)
	assert.Equal(t, 195.0, totalPrice)
}
