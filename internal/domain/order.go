package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// OrderDraftLine is a denormalized cart entry as submitted to the backend.
type OrderDraftLine struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
}

// OrderDraft is the request body for order creation: the cart contents plus
// customer details and totals computed client side. Tax is always zero, a
// known simplification carried over from the ordering backend.
type OrderDraft struct {
	Items         []OrderDraftLine `json:"items"`
	Customer      CustomerInfo     `json:"customer"`
	OrderType     OrderType        `json:"order_type"`
	SubtotalCents int64            `json:"subtotal_cents"`
	TaxCents      int64            `json:"tax_cents"`
	TotalCents    int64            `json:"total_cents"`
	Timestamp     time.Time        `json:"timestamp"`
}

// Order is the server-side record of a submitted order.
type Order struct {
	ID               string      `json:"id"`
	Draft            OrderDraft  `json:"draft"`
	Status           OrderStatus `json:"status"`
	PaymentID        *string     `json:"payment_id,omitempty"`
	EstimatedMinutes int         `json:"estimated_minutes"`
	CreatedAt        time.Time   `json:"created_at"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
}

// PipelineResult is what a fully successful checkout run hands back to the
// caller: the identifiers of the confirmed order and the charged total.
type PipelineResult struct {
	OrderID    string `json:"order_id"`
	PaymentID  string `json:"payment_id"`
	TotalCents int64  `json:"total_cents"`
}
