package domain

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// CustomerInfo holds the contact and delivery details collected during
// checkout. Address is only meaningful for delivery orders.
type CustomerInfo struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	OrderType OrderType `json:"order_type"`
}
