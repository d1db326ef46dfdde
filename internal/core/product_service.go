package core

import (
	"context"
	"math"
	"sort"
	"strings"

	"pitlane-backend-go/internal/db"
	"pitlane-backend-go/internal/models"
)

// Catalog sort keys.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortPopular   = "popular"
)

const (
	defaultPage  = 1
	defaultLimit = 12
)

// productService implements ProductService. Category and price filters
// are delegated to the store; search, sorting and pagination run
// in-process over the materialized matching set, which is fine at demo
// catalog scale.
type productService struct {
	products db.ProductRepository
}

// NewProductService creates a ProductService.
func NewProductService(products db.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	products, err := s.products.List(ctx, db.ProductFilter{
		Category: q.Category,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
	})
	if err != nil {
		return nil, err
	}

	// Substring search over name and description, case-insensitive. The
	// store has no full-text index.
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, q.SortBy)

	total := len(products)
	start := (q.Page - 1) * q.Limit
	end := start + q.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ProductPage{
		Products:   products[start:end],
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(q.Limit))),
	}, nil
}

func sortProducts(products []*models.Product, sortBy string) {
	var less func(a, b *models.Product) bool
	switch sortBy {
	case SortPriceAsc:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b *models.Product) bool { return a.Price > b.Price }
	case SortPopular:
		less = func(a, b *models.Product) bool { return a.Reviews > b.Reviews }
	default: // newest
		less = func(a, b *models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

func (s *productService) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	return s.products.GetByID(ctx, productID)
}

// Categories returns the static storefront category list.
func (s *productService) Categories() []models.Category {
	return []models.Category{
		{Name: "Vêtements", Count: 230},
		{Name: "Casquettes", Count: 145},
		{Name: "Accessoires", Count: 189},
		{Name: "Modèles réduits", Count: 98},
		{Name: "Posters", Count: 167},
		{Name: "Livres", Count: 76},
	}
}

func (s *productService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product := productFromRequest(req)
	if _, err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, productID string, req models.ProductRequest) (*models.Product, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":        req.Name,
		"category":    req.Category,
		"description": req.Description,
		"price":       req.Price,
		"rating":      req.Rating,
		"reviews":     req.Reviews,
		"stock":       req.Stock,
	}
	if req.OldPrice != nil {
		fields["oldPrice"] = *req.OldPrice
	}
	if req.Badge != nil {
		fields["badge"] = *req.Badge
	}
	if req.Images != nil {
		fields["images"] = req.Images
	}
	if err := s.products.Update(ctx, productID, fields); err != nil {
		return nil, err
	}
	return s.products.GetByID(ctx, productID)
}

func (s *productService) Delete(ctx context.Context, productID string) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.products.Delete(ctx, productID)
}

func productFromRequest(req models.ProductRequest) *models.Product {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	return &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Badge:       req.Badge,
		Images:      images,
		Stock:       req.Stock,
	}
}
