package handlers

import (
	"net/http"

	orderRepo "freshfold/database/repository/order"
	"freshfold/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves the mirrored order history for signed-in customers.
type OrderHandler struct {
	repo   orderRepo.OrderRepository
	logger *zap.Logger
}

func NewOrderHandler(repo orderRepo.OrderRepository, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, logger: logger}
}

// ListMyOrders returns the authenticated customer's mirrored orders.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	customerID := c.GetString("customerID")
	if customerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	orders, err := h.repo.GetByCustomer(customerID)
	if err != nil {
		h.logger.Error("failed to list orders", zap.String("customerID", customerID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch orders", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
