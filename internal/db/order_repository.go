package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store"
)

const ordersCollection = "orders"

// storeOrderRepository implements OrderRepository over the document store.
type storeOrderRepository struct {
	store store.Store
}

// NewOrderRepository creates an order repository backed by the given
// store.
func NewOrderRepository(s store.Store) OrderRepository {
	return &storeOrderRepository{store: s}
}

// Create adds a new order document with a generated ID and sets the
// timestamps. The generated ID is written back to order.ID. The stored
// items are a frozen snapshot; nothing ever mutates them afterwards.
func (r *storeOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	items := make([]any, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]any{
			"productId": it.ProductID,
			"name":      it.Name,
			"price":     it.Price,
			"quantity":  it.Quantity,
			"image":     it.Image,
		})
	}

	data := map[string]any{
		"userId": order.UserID,
		"items":  items,
		"shippingAddress": map[string]any{
			"street":     order.ShippingAddress.Street,
			"city":       order.ShippingAddress.City,
			"postalCode": order.ShippingAddress.PostalCode,
			"country":    order.ShippingAddress.Country,
		},
		"paymentMethod": order.PaymentMethod,
		"subtotal":      order.Subtotal,
		"tax":           order.Tax,
		"shipping":      order.Shipping,
		"totalAmount":   order.TotalAmount,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
		"createdAt":     order.CreatedAt,
		"updatedAt":     order.UpdatedAt,
	}

	id, err := r.store.Collection(ordersCollection).Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id
	return id, nil
}

// GetByID retrieves an order document by its ID.
func (r *storeOrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, errors.New("orderID cannot be empty for GetByID operation")
	}
	doc, err := r.store.Collection(ordersCollection).Doc(orderID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order '%s': %w", orderID, err)
	}
	return decodeOrder(doc)
}

// ListByUser returns a user's orders, most recent first.
func (r *storeOrderRepository) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	docs, err := r.store.Collection(ordersCollection).
		Where("userId", store.OpEqual, userID).
		OrderBy("createdAt", store.Desc).
		Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user '%s': %w", userID, err)
	}
	return decodeOrders(docs)
}

// ListAll returns every order, most recent first.
func (r *storeOrderRepository) ListAll(ctx context.Context) ([]*models.Order, error) {
	docs, err := r.store.Collection(ordersCollection).
		OrderBy("createdAt", store.Desc).
		Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return decodeOrders(docs)
}

// UpdateStatus sets the fulfillment status of an existing order and
// refreshes the updatedAt timestamp.
func (r *storeOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" {
		return errors.New("orderID cannot be empty for UpdateStatus operation")
	}
	err := r.store.Collection(ordersCollection).Doc(orderID).Update(ctx, map[string]any{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to update status of order '%s': %w", orderID, err)
	}
	return nil
}

func decodeOrders(docs []store.Document) ([]*models.Order, error) {
	orders := make([]*models.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := decodeOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func decodeOrder(doc store.Document) (*models.Order, error) {
	var order models.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order data for ID '%s': %w", doc.ID(), err)
	}
	order.ID = doc.ID()
	return &order, nil
}
