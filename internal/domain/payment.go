package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// PaymentInput is what the payment step forwards to the backend. CardToken
// is an opaque tokenized card reference; raw card digits never appear here.
type PaymentInput struct {
	Method    PaymentMethod `json:"method"`
	CardToken string        `json:"card_token,omitempty"`
}

// Payment is the server-side record of a processed payment.
type Payment struct {
	ID          string        `json:"id"`
	OrderID     string        `json:"order_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      PaymentMethod `json:"method"`
	Status      string        `json:"status"`
	ProcessedAt time.Time     `json:"processed_at"`
}
