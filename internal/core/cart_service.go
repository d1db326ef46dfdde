package core

import (
	"context"
	"errors"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/pricing"
)

// cartService implements CartService on top of the cart and product
// repositories.
type cartService struct {
	carts    db.CartRepository
	products db.ProductRepository
}

// NewCartService creates a CartService.
func NewCartService(carts db.CartRepository, products db.ProductRepository) CartService {
	return &cartService{carts: carts, products: products}
}

// GetCart joins the stored cart items with their products and computes
// the totals. Items referencing a deleted product are silently dropped
// from the view; the stored rows stay until removed or cleared.
func (s *cartService) GetCart(ctx context.Context, userID string) (*CartView, error) {
	items, err := s.carts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	priced := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				continue
			}
			return nil, err
		}
		line := models.CartLine{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      product.Name,
			Price:     product.Price,
		}
		if len(product.Images) > 0 {
			line.Image = product.Images[0]
		}
		lines = append(lines, line)
		priced = append(priced, pricing.LineItem{Price: product.Price, Quantity: item.Quantity})
	}

	return &CartView{Items: lines, Totals: pricing.Calculate(priced)}, nil
}

// AddItem puts a product in the cart. Adding a product that is already in
// the cart merges into the existing row by summing quantities instead of
// inserting a second one.
func (s *cartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	existing, err := s.carts.FindByProduct(ctx, userID, productID)
	switch {
	case err == nil:
		if err := s.carts.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, err
		}
	case errors.Is(err, db.ErrNotFound):
		item := &models.CartItem{ProductID: productID, Quantity: quantity}
		if _, err := s.carts.Add(ctx, userID, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*CartView, error) {
	if err := s.carts.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID string) (*CartView, error) {
	if err := s.carts.Remove(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}
