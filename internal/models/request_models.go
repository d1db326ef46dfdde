package models

// RegisterRequest is the body of POST /api/auth/register.
// The custom "password" rule requires at least 8 characters with an
// uppercase letter, a lowercase letter and a digit.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the body of PUT /api/auth/update. Empty fields
// are left untouched.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ChangePasswordRequest is the body of PUT /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,password"`
}

// ProductRequest is the body of POST/PUT /api/admin/products.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"min=0"`
	OldPrice    *float64 `json:"oldPrice" binding:"omitempty,min=0"`
	Rating      float64  `json:"rating" binding:"omitempty,min=0,max=5"`
	Reviews     int      `json:"reviews" binding:"omitempty,min=0"`
	Badge       *string  `json:"badge"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock" binding:"omitempty,min=0"`
}

// AddToCartRequest is the body of POST /api/cart/add. Quantity defaults
// to 1 when omitted.
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest is the body of PUT /api/cart/update/:id.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// OrderItemRequest is one line of a checkout request: the client's cart
// snapshot. Totals are always recomputed server-side from these lines.
type OrderItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price" binding:"min=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Image     string  `json:"image"`
}

// ShippingAddressRequest is the address part of a checkout request.
type ShippingAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

// UpdateOrderStatusRequest is the body of PUT /api/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// CreateIntentRequest is the body of POST /api/payment/create-intent.
// Amount is in euros.
type CreateIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
