package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Fixed ids keep the seed idempotent across runs.
const (
	clothingID = "5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f01"
	shoesID    = "5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f02"
	runningID  = "5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f03"
	productID  = "5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f10"
	orderID    = "5e5a9bd2-3bfa-4aee-8fd5-8ec6a49e3f20"
)

type categorySeed struct {
	ID         string
	Name       string
	ParentID   string
	Properties string
}

// Apply inserts demo data for manual testing: a three-level category chain
// with attribute schemas at each level, a product in the leaf category, and a
// sample order. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{
			ID:         clothingID,
			Name:       "Clothing",
			Properties: `[{"name":"brand","values":["Nike","Adidas","Puma"],"type":"text"},{"name":"material","type":"text"}]`,
		},
		{
			ID:         shoesID,
			Name:       "Shoes",
			ParentID:   clothingID,
			Properties: `[{"name":"size","values":["38","39","40","41","42","43"],"type":"text"}]`,
		},
		{
			ID:         runningID,
			Name:       "Running Shoes",
			ParentID:   shoesID,
			Properties: `[{"name":"cushioning","type":"text"},{"name":"weight_grams","type":"number"}]`,
		},
	}

	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Name, err)
		}
	}

	if err := upsertProduct(ctx, pool); err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	if err := upsertOrder(ctx, pool); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (id, name, parent_id, properties)
VALUES ($1, $2, NULLIF($3, '')::uuid, $4::jsonb)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    parent_id = EXCLUDED.parent_id,
    properties = EXCLUDED.properties
`
	_, err := pool.Exec(ctx, q, c.ID, c.Name, c.ParentID, c.Properties)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO products (id, title, description, price, images, category_id, properties)
VALUES ($1, 'Demo Runner', 'Lightweight demo running shoe', 89.99,
        '["https://example.com/images/demo-runner.jpg"]'::jsonb,
        $2,
        '{"brand":"Nike","material":"mesh","size":"42","cushioning":"medium"}'::jsonb)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, productID, runningID)
	return err
}

func upsertOrder(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO orders (id, name, email, street_address, city, postal_code, country, line_items)
VALUES ($1, 'Jane Shopper', 'jane@example.com', '1 Demo Street', 'Demoville', '12345', 'SE',
        '[{"quantity":2,"price_data":{"currency":"usd","unit_amount":8999,"product_data":{"name":"Demo Runner"}}}]'::jsonb)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, orderID)
	return err
}
