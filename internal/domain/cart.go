package domain

// CartItem is one entry in the customer's cart. Identity is ID; two entries
// never share an ID, adding the same item again bumps Quantity instead.
type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// TotalCents is the line total for this entry.
func (i CartItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}
