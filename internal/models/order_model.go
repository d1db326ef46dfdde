package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// OrderItem is a snapshot of a cart line at checkout time. The price is
// frozen here; later catalog changes do not affect existing orders.
type OrderItem struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
	Image     string  `json:"image,omitempty" firestore:"image,omitempty"`
}

// ShippingAddress is the delivery address attached to an order.
type ShippingAddress struct {
	Street     string `json:"street" firestore:"street"`
	City       string `json:"city" firestore:"city"`
	PostalCode string `json:"postalCode" firestore:"postalCode"`
	Country    string `json:"country" firestore:"country"`
}

// Order is an immutable snapshot of a completed cart plus computed totals
// and fulfillment status. Monetary fields always satisfy
// totalAmount = subtotal + tax + shipping.
type Order struct {
	ID              string          `json:"id" firestore:"-"` // Document ID
	UserID          string          `json:"userId" firestore:"userId"`
	Items           []OrderItem     `json:"items" firestore:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" firestore:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" firestore:"paymentMethod"`
	Subtotal        float64         `json:"subtotal" firestore:"subtotal"`
	Tax             float64         `json:"tax" firestore:"tax"`
	Shipping        float64         `json:"shipping" firestore:"shipping"`
	TotalAmount     float64         `json:"totalAmount" firestore:"totalAmount"`
	Status          string          `json:"status" firestore:"status"`
	PaymentStatus   string          `json:"paymentStatus" firestore:"paymentStatus"`
	CreatedAt       time.Time       `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" firestore:"updatedAt"`
}
