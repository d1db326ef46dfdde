package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/models"
)

// OrderHandler handles the order endpoints under /api/orders and the
// admin order management under /api/admin/orders.
type OrderHandler struct {
	orders core.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders core.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	order, err := h.orders.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"order": order})
}

// List handles GET /api/orders, the authenticated user's own orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"orders": orders})
}

// Get handles GET /api/orders/:id. Admins can read any order; everyone
// else only their own.
func (h *OrderHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	order, err := h.orders.Get(c.Request.Context(), user.ID, user.IsAdmin(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"order": order})
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"orders": orders})
}

// UpdateStatus handles PUT /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"order": order})
}
