package handlers

import (
	"net/http"

	"freshfold/models"
	"freshfold/services/booking"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment-intent endpoint for the checkout page.
type PaymentHandler struct {
	svc    *booking.PaymentService
	logger *zap.Logger
}

func NewPaymentHandler(svc *booking.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, logger: logger}
}

// CreatePaymentIntent returns a Stripe client secret for the booking total.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	intent, err := h.svc.CreateIntent(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("payment intent failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment setup failed", "please try again later")
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentIntent": intent})
}
