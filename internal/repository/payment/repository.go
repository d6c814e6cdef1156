package payment

import (
	"context"

	"bodega-storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
}
