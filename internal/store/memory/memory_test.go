package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitlane-backend-go/internal/store"
)

func TestAddGeneratesPrefixedIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	id1, err := s.Collection("products").Add(ctx, map[string]any{"name": "a"})
	require.NoError(t, err)
	id2, err := s.Collection("products").Add(ctx, map[string]any{"name": "b"})
	require.NoError(t, err)

	assert.Equal(t, "products_1", id1)
	assert.Equal(t, "products_2", id2)

	// The counter is process-wide, not per collection.
	id3, err := s.Collection("users").Add(ctx, map[string]any{"name": "c"})
	require.NoError(t, err)
	assert.Equal(t, "users_3", id3)
}

func TestWithIDGenerator(t *testing.T) {
	n := 0
	s := New(WithIDGenerator(func(collection string) string {
		n++
		return fmt.Sprintf("custom-%s-%d", collection, n)
	}))

	id, err := s.Collection("orders").Add(context.Background(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "custom-orders-1", id)
}

func TestGetSetUpdateDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	doc := s.Collection("users").Doc("u1")

	require.NoError(t, doc.Set(ctx, map[string]any{"email": "a@b.c", "role": "user"}))

	snap, err := doc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.ID())
	assert.Equal(t, "a@b.c", snap.Data()["email"])

	// Update merges fields, leaving the rest untouched.
	require.NoError(t, doc.Update(ctx, map[string]any{"role": "admin"}))
	snap, err = doc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", snap.Data()["role"])
	assert.Equal(t, "a@b.c", snap.Data()["email"])

	require.NoError(t, doc.Delete(ctx))
	_, err = doc.Get(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting a missing document is a no-op.
	assert.NoError(t, doc.Delete(ctx))
}

func TestUpdateMissingDocument(t *testing.T) {
	s := New()
	err := s.Collection("users").Doc("ghost").Update(context.Background(), map[string]any{"x": 1})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()
	doc := s.Collection("users").Doc("u1")
	require.NoError(t, doc.Set(ctx, map[string]any{"email": "a@b.c"}))

	snap, err := doc.Get(ctx)
	require.NoError(t, err)
	snap.Data()["email"] = "mutated"

	again, err := doc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", again.Data()["email"], "mutating a snapshot must not touch the stored record")
}

func TestWhereOperators(t *testing.T) {
	s := New()
	ctx := context.Background()
	col := s.Collection("products")
	require.NoError(t, col.Doc("p1").Set(ctx, map[string]any{"price": 45.0, "category": "Casquettes"}))
	require.NoError(t, col.Doc("p2").Set(ctx, map[string]any{"price": 65.0, "category": "Vêtements"}))
	require.NoError(t, col.Doc("p3").Set(ctx, map[string]any{"price": 199.0, "category": "Vêtements"}))

	cases := []struct {
		op    string
		value any
		want  int
	}{
		{store.OpEqual, 65.0, 1},
		{store.OpNotEqual, 65.0, 2},
		{store.OpGreater, 65.0, 1},
		{store.OpGreaterEqual, 65.0, 2},
		{store.OpLess, 65.0, 1},
		{store.OpLessEqual, 65.0, 2},
	}
	for _, tc := range cases {
		docs, err := col.Where("price", tc.op, tc.value).Documents(ctx)
		require.NoError(t, err, tc.op)
		assert.Len(t, docs, tc.want, "price %s %v", tc.op, tc.value)
	}
}

func TestWhereChaining(t *testing.T) {
	s := New()
	ctx := context.Background()
	col := s.Collection("products")
	require.NoError(t, col.Doc("p1").Set(ctx, map[string]any{"price": 45.0, "category": "Casquettes"}))
	require.NoError(t, col.Doc("p2").Set(ctx, map[string]any{"price": 65.0, "category": "Vêtements"}))
	require.NoError(t, col.Doc("p3").Set(ctx, map[string]any{"price": 199.0, "category": "Vêtements"}))

	docs, err := col.
		Where("category", store.OpEqual, "Vêtements").
		Where("price", store.OpLess, 100.0).
		Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "p2", docs[0].ID())
}

func TestWhereCoercesNumericTypes(t *testing.T) {
	s := New()
	ctx := context.Background()
	col := s.Collection("products")
	require.NoError(t, col.Doc("p1").Set(ctx, map[string]any{"stock": 150}))

	// int stored, float64 queried.
	docs, err := col.Where("stock", store.OpGreater, 100.0).Documents(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestOrderBy(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	col := s.Collection("orders")
	require.NoError(t, col.Doc("o1").Set(ctx, map[string]any{"createdAt": base}))
	require.NoError(t, col.Doc("o2").Set(ctx, map[string]any{"createdAt": base.Add(time.Hour)}))
	require.NoError(t, col.Doc("o3").Set(ctx, map[string]any{"createdAt": base.Add(2 * time.Hour)}))

	docs, err := col.OrderBy("createdAt", store.Desc).Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "o3", docs[0].ID())
	assert.Equal(t, "o1", docs[2].ID())

	docs, err = col.OrderBy("createdAt", store.Asc).Documents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "o1", docs[0].ID())
}

func TestSubcollections(t *testing.T) {
	s := New()
	ctx := context.Background()
	users := s.Collection("users")
	require.NoError(t, users.Doc("u1").Set(ctx, map[string]any{"email": "a@b.c"}))

	cart := users.Doc("u1").Collection("cart")
	_, err := cart.Add(ctx, map[string]any{"productId": "p1", "quantity": 2})
	require.NoError(t, err)

	docs, err := cart.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Another user's cart is a different collection.
	other, err := users.Doc("u2").Collection("cart").Documents(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)

	// Deleting the parent orphans the subcollection entries.
	require.NoError(t, users.Doc("u1").Delete(ctx))
	docs, err = cart.Documents(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1, "subcollections are orphaned, not cascaded")
}

func TestBatchDeletes(t *testing.T) {
	s := New()
	ctx := context.Background()
	col := s.Collection("items")
	require.NoError(t, col.Doc("a").Set(ctx, map[string]any{"n": 1}))
	require.NoError(t, col.Doc("b").Set(ctx, map[string]any{"n": 2}))
	require.NoError(t, col.Doc("c").Set(ctx, map[string]any{"n": 3}))

	batch := s.Batch()
	batch.Delete(col.Doc("a"))
	batch.Delete(col.Doc("b"))
	require.NoError(t, batch.Commit(ctx))

	docs, err := col.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "c", docs[0].ID())
}

func TestDocumentsInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	col := s.Collection("items")
	for _, id := range []string{"x", "y", "z"} {
		require.NoError(t, col.Doc(id).Set(ctx, map[string]any{}))
	}

	docs, err := col.Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "x", docs[0].ID())
	assert.Equal(t, "y", docs[1].ID())
	assert.Equal(t, "z", docs[2].ID())
}

func TestDataTo(t *testing.T) {
	s := New()
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Collection("products").Doc("p1").Set(ctx, map[string]any{
		"name":      "Casquette",
		"price":     45.0,
		"stock":     150,
		"createdAt": created,
	}))

	var out struct {
		Name      string    `firestore:"name"`
		Price     float64   `firestore:"price"`
		Stock     int       `firestore:"stock"`
		CreatedAt time.Time `firestore:"createdAt"`
	}
	snap, err := s.Collection("products").Doc("p1").Get(ctx)
	require.NoError(t, err)
	require.NoError(t, snap.DataTo(&out))

	assert.Equal(t, "Casquette", out.Name)
	assert.Equal(t, 45.0, out.Price)
	assert.Equal(t, 150, out.Stock)
	assert.True(t, out.CreatedAt.Equal(created))
}
