package core

import (
	"context"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/pricing"
)

// TokenService issues and verifies the JWT pair. Claims carry the user id
// only; access and refresh tokens use separate secrets and expiries.
type TokenService interface {
	GenerateAccessToken(userID string) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	// VerifyAccessToken returns the user id the token was issued for.
	VerifyAccessToken(token string) (string, error)
}

// UserService defines the interface for account operations.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// ProductQuery carries the catalog listing parameters.
type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	SortBy   string // newest (default), price-asc, price-desc, popular
	PriceMin *float64
	PriceMax *float64
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products   []*models.Product `json:"products"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// ProductService defines the interface for catalog operations.
type ProductService interface {
	List(ctx context.Context, q ProductQuery) (*ProductPage, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	Categories() []models.Category
	Create(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	Update(ctx context.Context, productID string, req models.ProductRequest) (*models.Product, error)
	Delete(ctx context.Context, productID string) error
}

// CartView is a cart joined with product data plus its computed totals.
type CartView struct {
	Items  []models.CartLine `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

// CartService defines the interface for cart operations. Mutations return
// the refreshed cart so the client never needs a second round trip.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*CartView, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*CartView, error)
	Clear(ctx context.Context, userID string) error
}

// OrderService defines the interface for order operations.
type OrderService interface {
	Create(ctx context.Context, userID string, req models.CreateOrderRequest) (*models.Order, error)
	Get(ctx context.Context, userID string, isAdmin bool, orderID string) (*models.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Order, error)
	ListAll(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*models.Order, error)
}

// PaymentService defines the interface for the payment gateway.
type PaymentService interface {
	// CreateIntent registers a pending charge for the given amount in
	// euros and returns the gateway client secret.
	CreateIntent(ctx context.Context, userID string, amount float64) (string, error)
	// HandleWebhook verifies and processes a gateway event callback.
	HandleWebhook(payload []byte, signature string) error
}
