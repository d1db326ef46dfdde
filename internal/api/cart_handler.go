package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/models"
)

// CartHandler handles the cart endpoints under /api/cart. All routes run
// behind RequireAuth; the cart is always the authenticated user's own.
type CartHandler struct {
	carts core.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts core.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": cart})
}

// Add handles POST /api/cart/add.
func (h *CartHandler) Add(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": cart})
}

// Update handles PUT /api/cart/update/:id.
func (h *CartHandler) Update(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	cart, err := h.carts.UpdateItem(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Quantity)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": cart})
}

// Remove handles DELETE /api/cart/remove/:id.
func (h *CartHandler) Remove(c *gin.Context) {
	cart, err := h.carts.RemoveItem(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"cart": cart})
}

// Clear handles DELETE /api/cart/clear.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.UserID(c)); err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"message": "Cart cleared"})
}
