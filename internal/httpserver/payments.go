package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bodega-storefront/internal/domain"
	paymentsvc "bodega-storefront/internal/service/payment"
)

type processPaymentRequest struct {
	Order struct {
		OrderID string `json:"order_id"`
	} `json:"order"`
	Payment domain.PaymentInput `json:"payment"`
}

type processPaymentResponse struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"payment_id"`
	OrderID     string `json:"order_id"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

func processPaymentHandler(payments PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req processPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment request: " + err.Error()})
			return
		}

		p, err := payments.Process(c.Request.Context(), req.Order.OrderID, req.Payment)
		if err != nil {
			switch {
			case errors.Is(err, paymentsvc.ErrDeclined), errors.Is(err, paymentsvc.ErrInvalidPayment):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, processPaymentResponse{
			Success:     true,
			PaymentID:   p.ID,
			OrderID:     p.OrderID,
			AmountCents: p.AmountCents,
			Status:      p.Status,
			Message:     "Payment processed successfully",
		})
	}
}
