// Package pricing is the single authoritative implementation of the cart
// and order totals formula. Every call site (cart responses, order
// creation) must go through Calculate so that totals never diverge.
package pricing

import "math"

// Pricing constants: 20% VAT, flat shipping below the free-shipping
// threshold.
const (
	taxRate          = 0.20
	flatShipping     = 9.99
	freeShippingOver = 100.0
)

// LineItem is a priced quantity, the only input Calculate needs.
type LineItem struct {
	Price    float64
	Quantity int
}

// Totals is the computed money breakdown of a cart or order.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	Tax        float64 `json:"tax"`
	Shipping   float64 `json:"shipping"`
	Total      float64 `json:"total"`
	TotalItems int     `json:"totalItems"`
}

// Calculate computes totals for the given line items. Each output field is
// rounded to 2 decimal places after summing; intermediate values stay
// unrounded so the result matches toFixed(2) arithmetic. An empty input
// yields all-zero totals, including shipping.
func Calculate(items []LineItem) Totals {
	if len(items) == 0 {
		return Totals{}
	}

	var subtotal float64
	var count int
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}

	tax := subtotal * taxRate
	shipping := flatShipping
	if subtotal > freeShippingOver {
		shipping = 0
	}
	total := subtotal + tax + shipping

	return Totals{
		Subtotal:   round2(subtotal),
		Tax:        round2(tax),
		Shipping:   round2(shipping),
		Total:      round2(total),
		TotalItems: count,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
