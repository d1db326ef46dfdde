package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store/memory"
)

func TestSeedDemoData(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, SeedDemoData(ctx, s))

	users := NewUserRepository(s)
	admin, err := users.GetByEmail(ctx, SeedAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, "admin_1", admin.ID)
	assert.True(t, admin.IsAdmin())

	products := NewProductRepository(s)
	all, err := products.List(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	caps, err := products.List(ctx, ProductFilter{Category: "Casquettes"})
	require.NoError(t, err)
	assert.Len(t, caps, 2)
}

func TestSeedDemoDataCategoryAll(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, SeedDemoData(ctx, s))

	products := NewProductRepository(s)
	all, err := products.List(ctx, ProductFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 8, "category 'all' must not filter")
}

func TestProductFilterPriceBounds(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	require.NoError(t, SeedDemoData(ctx, s))

	products := NewProductRepository(s)
	min := 40.0
	max := 100.0
	mid, err := products.List(ctx, ProductFilter{PriceMin: &min, PriceMax: &max})
	require.NoError(t, err)

	require.NotEmpty(t, mid)
	for _, p := range mid {
		assert.GreaterOrEqual(t, p.Price, min)
		assert.LessOrEqual(t, p.Price, max)
	}
}

func TestUserRepositoryLifecycle(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	users := NewUserRepository(s)

	_, err := users.GetByEmail(ctx, "nobody@pitlane.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user := &models.User{
		Email:     "max@pitlane.com",
		Password:  "hashed",
		FirstName: "Max",
		LastName:  "Verstappen",
		Role:      models.RoleUser,
	}
	id, err := users.Create(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, user.ID)

	got, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "max@pitlane.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())

	require.NoError(t, users.Update(ctx, id, map[string]any{"firstName": "Checo"}))
	got, err = users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Checo", got.FirstName)
}

func TestCartRepositorySubcollectionIsolation(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	carts := NewCartRepository(s)

	_, err := carts.Add(ctx, "u1", &models.CartItem{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = carts.Add(ctx, "u2", &models.CartItem{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	u1Items, err := carts.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, u1Items, 1)
	assert.Equal(t, 2, u1Items[0].Quantity)

	require.NoError(t, carts.Clear(ctx, "u1"))
	u1Items, err = carts.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, u1Items)

	u2Items, err := carts.List(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, u2Items, 1, "clearing one user's cart must not touch another's")
}
