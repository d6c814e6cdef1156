package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type menuSeed struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
}

// Apply inserts the bodega menu for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []menuSeed{
		{
			ID:          "bec",
			Name:        "Bacon Egg & Cheese",
			Description: "Classic NYC bodega sandwich with crispy bacon, fluffy eggs, and melted cheese",
			PriceCents:  650,
		},
		{
			ID:          "chopped-cheese",
			Name:        "Chopped Cheese",
			Description: "Legendary NYC chopped cheese with ground beef, onions, peppers, and cheese",
			PriceCents:  800,
		},
		{
			ID:          "wings",
			Name:        "Buffalo Wings",
			Description: "Crispy wings tossed in our signature buffalo sauce",
			PriceCents:  1299,
		},
		{
			ID:          "halal-platter",
			Name:        "Halal Platter",
			Description: "Tender chicken or lamb over rice with white sauce and hot sauce",
			PriceCents:  1099,
		},
	}

	for _, item := range items {
		if err := upsertMenuItem(ctx, pool, item); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", item.ID, err)
		}
	}

	return nil
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, item menuSeed) error {
	const q = `
INSERT INTO menu_items (id, name, description, price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, item.ID, item.Name, item.Description, item.PriceCents)
	if err != nil {
		return err
	}
	return nil
}
