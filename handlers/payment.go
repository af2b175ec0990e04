package handlers

import (
	"net/http"

	"mentorsetu/services/payment"
	"mentorsetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the simulated payment endpoint.
type PaymentHandler struct {
	Payments payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(payments payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// ProcessPaymentHandler runs a payment through the simulation.
func (h *PaymentHandler) ProcessPaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		Amount int    `json:"amount"`
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Payments.ProcessPayment(c.Request.Context(), input.Amount, input.Method)
	if err != nil {
		logger.Error("Payment processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusPaymentRequired, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
