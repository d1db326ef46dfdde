package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pitlane-backend-go/internal/models"
	"pitlane-backend-go/internal/store"
)

const productsCollection = "products"

// storeProductRepository implements ProductRepository over the document
// store.
type storeProductRepository struct {
	store store.Store
}

// NewProductRepository creates a product repository backed by the given
// store.
func NewProductRepository(s store.Store) ProductRepository {
	return &storeProductRepository{store: s}
}

// List returns the products matching the filter, in insertion order.
// Category and price bounds are delegated to the store's predicate list.
func (r *storeProductRepository) List(ctx context.Context, filter ProductFilter) ([]*models.Product, error) {
	var q store.Query = r.store.Collection(productsCollection)
	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("category", store.OpEqual, filter.Category)
	}
	if filter.PriceMin != nil {
		q = q.Where("price", store.OpGreaterEqual, *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("price", store.OpLessEqual, *filter.PriceMax)
	}

	docs, err := q.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*models.Product, 0, len(docs))
	for _, doc := range docs {
		p, err := decodeProduct(doc)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// GetByID retrieves a product document by its ID.
func (r *storeProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	if productID == "" {
		return nil, errors.New("productID cannot be empty for GetByID operation")
	}
	doc, err := r.store.Collection(productsCollection).Doc(productID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get product '%s': %w", productID, err)
	}
	return decodeProduct(doc)
}

// Create adds a new product document with a generated ID and sets the
// timestamps. The generated ID is written back to product.ID.
func (r *storeProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	id, err := r.store.Collection(productsCollection).Add(ctx, ProductData(product))
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = id
	return id, nil
}

// Update merges the given fields into an existing product document and
// refreshes the updatedAt timestamp.
func (r *storeProductRepository) Update(ctx context.Context, productID string, fields map[string]any) error {
	if productID == "" {
		return errors.New("productID cannot be empty for Update operation")
	}
	fields["updatedAt"] = time.Now().UTC()
	if err := r.store.Collection(productsCollection).Doc(productID).Update(ctx, fields); err != nil {
		return fmt.Errorf("failed to update product '%s': %w", productID, err)
	}
	return nil
}

// Delete removes a product document. Cart items referencing the product
// are left in place; cart reads drop lines whose product is gone.
func (r *storeProductRepository) Delete(ctx context.Context, productID string) error {
	if productID == "" {
		return errors.New("productID cannot be empty for Delete operation")
	}
	if err := r.store.Collection(productsCollection).Doc(productID).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete product '%s': %w", productID, err)
	}
	return nil
}

func decodeProduct(doc store.Document) (*models.Product, error) {
	var product models.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product data for ID '%s': %w", doc.ID(), err)
	}
	product.ID = doc.ID()
	if product.Images == nil {
		product.Images = []string{}
	}
	return &product, nil
}

// ProductData converts a product model to its stored representation. It
// is exported for the seeder.
func ProductData(p *models.Product) map[string]any {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	// Optional fields are stored as plain values or null, never as typed
	// nil pointers, so both adapters decode them identically.
	var oldPrice any
	if p.OldPrice != nil {
		oldPrice = *p.OldPrice
	}
	var badge any
	if p.Badge != nil {
		badge = *p.Badge
	}
	return map[string]any{
		"name":        p.Name,
		"category":    p.Category,
		"description": p.Description,
		"price":       p.Price,
		"oldPrice":    oldPrice,
		"rating":      p.Rating,
		"reviews":     p.Reviews,
		"badge":       badge,
		"images":      images,
		"stock":       p.Stock,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}
