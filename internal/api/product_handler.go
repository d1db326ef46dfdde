package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/models"
)

// ProductHandler handles the catalog endpoints, public reads under
// /api/products and admin writes under /api/admin/products.
type ProductHandler struct {
	products core.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products core.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	query := core.ProductQuery{
		Page:     intQuery(c, "page"),
		Limit:    intQuery(c, "limit"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
		PriceMin: floatQuery(c, "priceMin"),
		PriceMax: floatQuery(c, "priceMax"),
	}

	page, err := h.products.List(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, page)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"product": product})
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"categories": h.products.Categories()})
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	product, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"product": product})
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"product": product})
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

// intQuery parses an integer query parameter, 0 when absent or invalid
// so the service applies its defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}

// floatQuery parses an optional float query parameter, nil when absent
// or invalid.
func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
