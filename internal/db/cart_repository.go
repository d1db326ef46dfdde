package db

import (
	"context"
	"fmt"
	"time"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store"
)

const cartSubcollection = "cart"

// storeCartRepository implements CartRepository over the document store.
// Cart items live in the users/{userId}/cart subcollection.
type storeCartRepository struct {
	store store.Store
}

// NewCartRepository creates a cart repository backed by the given store.
func NewCartRepository(s store.Store) CartRepository {
	return &storeCartRepository{store: s}
}

func (r *storeCartRepository) cartOf(userID string) store.Collection {
	return r.store.Collection(usersCollection).Doc(userID).Collection(cartSubcollection)
}

// List returns all cart items of a user in insertion order.
func (r *storeCartRepository) List(ctx context.Context, userID string) ([]*models.CartItem, error) {
	docs, err := r.cartOf(userID).Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart for user '%s': %w", userID, err)
	}
	items := make([]*models.CartItem, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeCartItem(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FindByProduct returns the cart item referencing the given product, or
// ErrNotFound. Add-to-cart merges into this row instead of inserting a
// duplicate.
func (r *storeCartRepository) FindByProduct(ctx context.Context, userID, productID string) (*models.CartItem, error) {
	docs, err := r.cartOf(userID).Where("productId", store.OpEqual, productID).Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart item by product: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("cart item for product '%s': %w", productID, ErrNotFound)
	}
	return decodeCartItem(docs[0])
}

// Add inserts a new cart item and returns its generated ID.
func (r *storeCartRepository) Add(ctx context.Context, userID string, item *models.CartItem) (string, error) {
	item.AddedAt = time.Now().UTC()
	id, err := r.cartOf(userID).Add(ctx, map[string]any{
		"productId": item.ProductID,
		"quantity":  item.Quantity,
		"addedAt":   item.AddedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to add cart item: %w", err)
	}
	item.ID = id
	return id, nil
}

// UpdateQuantity sets the quantity of an existing cart item.
func (r *storeCartRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	err := r.cartOf(userID).Doc(itemID).Update(ctx, map[string]any{"quantity": quantity})
	if err != nil {
		return fmt.Errorf("failed to update cart item '%s': %w", itemID, err)
	}
	return nil
}

// Remove deletes one cart item.
func (r *storeCartRepository) Remove(ctx context.Context, userID, itemID string) error {
	if err := r.cartOf(userID).Doc(itemID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to remove cart item '%s': %w", itemID, err)
	}
	return nil
}

// Clear deletes every cart item of a user through a batch of sequential
// deletes.
func (r *storeCartRepository) Clear(ctx context.Context, userID string) error {
	cart := r.cartOf(userID)
	docs, err := cart.Documents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cart for clearing: %w", err)
	}
	batch := r.store.Batch()
	for _, doc := range docs {
		batch.Delete(cart.Doc(doc.ID()))
	}
	if err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("failed to clear cart for user '%s': %w", userID, err)
	}
	return nil
}

func decodeCartItem(doc store.Document) (*models.CartItem, error) {
	var item models.CartItem
	if err := doc.DataTo(&item); err != nil {
		return nil, fmt.Errorf("failed to decode cart item data for ID '%s': %w", doc.ID(), err)
	}
	item.ID = doc.ID()
	return &item, nil
}
