package order

import (
	"context"

	"bodega-storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Confirm(ctx context.Context, id, paymentID string) error
}
