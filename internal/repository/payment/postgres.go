package payment

import (
	"context"
	"errors"

	"bodega-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Payment) error {
	const q = `
INSERT INTO payments (id, order_id, amount_cents, method, status, processed_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, q, p.ID, p.OrderID, p.AmountCents, p.Method, p.Status, p.ProcessedAt)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const q = `
SELECT id, order_id, amount_cents, method, status, processed_at
FROM payments
WHERE id = $1
`
	var p domain.Payment
	if err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.OrderID, &p.AmountCents, &p.Method, &p.Status, &p.ProcessedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
