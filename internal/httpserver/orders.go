package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bodega-storefront/internal/domain"
	ordersvc "bodega-storefront/internal/service/order"
)

type createOrderResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Message          string `json:"message"`
}

type confirmOrderRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
}

func createOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft domain.OrderDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order draft: " + err.Error()})
			return
		}

		o, err := orders.Create(c.Request.Context(), draft)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, createOrderResponse{
			Success:          true,
			OrderID:          o.ID,
			Status:           string(o.Status),
			EstimatedMinutes: o.EstimatedMinutes,
			Message:          "Order created successfully",
		})
	}
}

func confirmOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid confirmation: " + err.Error()})
			return
		}

		o, err := orders.Confirm(c.Request.Context(), req.OrderID, req.PaymentID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"order_id": o.ID,
			"status":   o.Status,
			"message":  "Order confirmed successfully",
		})
	}
}

func getOrderHandler(orders OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Get(c.Request.Context(), c.Param("orderID"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ordersvc.ErrInvalidDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
