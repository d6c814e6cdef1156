package order

import (
	"context"
	"errors"
	"io"
	"log"

	"bodega-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const orderQ = `
INSERT INTO orders (id, status, order_type, customer_name, customer_email, customer_phone, customer_address,
                    subtotal_cents, tax_cents, total_cents, estimated_minutes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`
	var address *string
	if o.Draft.Customer.Address != "" {
		address = &o.Draft.Customer.Address
	}
	if _, err := tx.Exec(ctx, orderQ,
		o.ID,
		o.Status,
		o.Draft.OrderType,
		o.Draft.Customer.Name,
		o.Draft.Customer.Email,
		o.Draft.Customer.Phone,
		address,
		o.Draft.SubtotalCents,
		o.Draft.TaxCents,
		o.Draft.TotalCents,
		o.EstimatedMinutes,
		o.CreatedAt,
	); err != nil {
		r.logger.Printf("order repo: insert order id=%s error=%v", o.ID, err)
		return err
	}

	const lineQ = `
INSERT INTO order_items (order_id, item_id, name, price_cents, quantity, total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for _, line := range o.Draft.Items {
		if _, err := tx.Exec(ctx, lineQ, o.ID, line.ID, line.Name, line.PriceCents, line.Quantity, line.TotalCents); err != nil {
			r.logger.Printf("order repo: insert line order_id=%s item=%s error=%v", o.ID, line.ID, err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const orderQ = `
SELECT id, status, order_type, customer_name, customer_email, customer_phone, COALESCE(customer_address, ''),
       subtotal_cents, tax_cents, total_cents, estimated_minutes, payment_id, created_at, confirmed_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	if err := r.pool.QueryRow(ctx, orderQ, id).Scan(
		&o.ID,
		&o.Status,
		&o.Draft.OrderType,
		&o.Draft.Customer.Name,
		&o.Draft.Customer.Email,
		&o.Draft.Customer.Phone,
		&o.Draft.Customer.Address,
		&o.Draft.SubtotalCents,
		&o.Draft.TaxCents,
		&o.Draft.TotalCents,
		&o.EstimatedMinutes,
		&o.PaymentID,
		&o.CreatedAt,
		&o.ConfirmedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.Draft.Customer.OrderType = o.Draft.OrderType
	o.Draft.Timestamp = o.CreatedAt

	const linesQ = `
SELECT item_id, name, price_cents, quantity, total_cents
FROM order_items
WHERE order_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, linesQ, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderDraftLine
		if err := rows.Scan(&line.ID, &line.Name, &line.PriceCents, &line.Quantity, &line.TotalCents); err != nil {
			return nil, err
		}
		o.Draft.Items = append(o.Draft.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Confirm(ctx context.Context, id, paymentID string) error {
	const q = `
UPDATE orders
SET status = 'confirmed',
    payment_id = $1,
    confirmed_at = now()
WHERE id = $2
RETURNING id
`
	var confirmed string
	if err := r.pool.QueryRow(ctx, q, paymentID, id).Scan(&confirmed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}
