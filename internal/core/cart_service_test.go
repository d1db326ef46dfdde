package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/store/memory"
)

func newCartService(t *testing.T) (CartService, ProductService) {
	t.Helper()
	s := memory.New()
	require.NoError(t, db.SeedDemoData(context.Background(), s))
	products := db.NewProductRepository(s)
	return NewCartService(db.NewCartRepository(s), products), NewProductService(products)
}

func TestAddItemMergesQuantities(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", "prod_1", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Adding the same product again merges into the existing row.
	cart, err = svc.AddItem(ctx, "u1", "prod_1", 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.Totals.TotalItems)
}

func TestAddItemDefaultsQuantity(t *testing.T) {
	svc, _ := newCartService(t)

	cart, err := svc.AddItem(context.Background(), "u1", "prod_6", 0)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _ := newCartService(t)

	_, err := svc.AddItem(context.Background(), "u1", "prod_missing", 1)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestCartTotals(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	// T-Shirt Mercedes (65) + Casquette Red Bull (45) = 110, free shipping.
	_, err := svc.AddItem(ctx, "u1", "prod_2", 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "u1", "prod_1", 1)
	require.NoError(t, err)

	assert.Equal(t, 110.0, cart.Totals.Subtotal)
	assert.Equal(t, 22.0, cart.Totals.Tax)
	assert.Equal(t, 0.0, cart.Totals.Shipping)
	assert.Equal(t, 132.0, cart.Totals.Total)
}

func TestUpdateAndRemoveItem(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "u1", "prod_1", 1)
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItem(ctx, "u1", itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	cart, err = svc.RemoveItem(ctx, "u1", itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Totals.Total)
}

func TestUpdateMissingItem(t *testing.T) {
	svc, _ := newCartService(t)

	_, err := svc.UpdateItem(context.Background(), "u1", "cart_missing", 2)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestGetCartSkipsDeletedProducts(t *testing.T) {
	svc, products := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "prod_1", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "u1", "prod_2", 1)
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, "prod_2"))

	cart, err := svc.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "lines for deleted products are dropped from the view")
	assert.Equal(t, "prod_1", cart.Items[0].ProductID)
	assert.Equal(t, 45.0, cart.Totals.Subtotal)
}

func TestClearCart(t *testing.T) {
	svc, _ := newCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "u1", "prod_1", 2)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "u1"))

	cart, err := svc.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Totals.Shipping, "empty cart charges no shipping")
}
