package models

import "time"

// Product represents a catalog entry.
type Product struct {
	ID          string    `json:"id" firestore:"-"` // Document ID
	Name        string    `json:"name" firestore:"name"`
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Price       float64   `json:"price" firestore:"price"`
	OldPrice    *float64  `json:"oldPrice" firestore:"oldPrice"`
	Rating      float64   `json:"rating" firestore:"rating"`
	Reviews     int       `json:"reviews" firestore:"reviews"`
	Badge       *string   `json:"badge" firestore:"badge"` // promotional label, e.g. "NOUVEAU"
	Images      []string  `json:"images" firestore:"images"`
	Stock       int       `json:"stock" firestore:"stock"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Category is a catalog category with its product count.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
