package db

import (
	"context"

	"pitlane-backend-go/internal/models"
)

// ProductFilter carries the filters the store can evaluate itself; search
// text and sorting are applied in the service layer after the matching set
// is materialized.
type ProductFilter struct {
	Category string
	PriceMin *float64
	PriceMax *float64
}

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error) // Returns new user ID
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, userID string, fields map[string]any) error
}

// ProductRepository defines the interface for catalog storage operations.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*models.Product, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (string, error)
	Update(ctx context.Context, productID string, fields map[string]any) error
	Delete(ctx context.Context, productID string) error
}

// CartRepository defines the interface for the per-user cart
// subcollection (users/{userId}/cart).
type CartRepository interface {
	List(ctx context.Context, userID string) ([]*models.CartItem, error)
	FindByProduct(ctx context.Context, userID, productID string) (*models.CartItem, error)
	Add(ctx context.Context, userID string, item *models.CartItem) (string, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// OrderRepository defines the interface for order storage operations.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
	ListAll(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}
