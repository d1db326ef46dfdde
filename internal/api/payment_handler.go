package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/models"
)

// PaymentHandler handles the payment endpoints under /api/payment.
type PaymentHandler struct {
	payments core.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments core.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// CreateIntent handles POST /api/payment/create-intent.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req models.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	clientSecret, err := h.payments.CreateIntent(c.Request.Context(), middleware.UserID(c), req.Amount)
	if err != nil {
		c.Error(err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// Webhook handles POST /api/payment/webhook. The gateway authenticates
// itself with the Stripe-Signature header over the raw body, so the body
// must be read unparsed.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(NewAppError(http.StatusBadRequest, "Failed to read webhook payload", err))
		return
	}

	if err := h.payments.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
