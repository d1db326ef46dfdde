package models

import "time"

// CartItem is a stored entry of the per-user cart subcollection
// (users/{userId}/cart).
type CartItem struct {
	ID        string    `json:"id" firestore:"-"` // Document ID
	ProductID string    `json:"productId" firestore:"productId"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"addedAt" firestore:"addedAt"`
}

// CartLine is a cart item joined with its product for API responses.
// Items whose product has been deleted are dropped from the response.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}
