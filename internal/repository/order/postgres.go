package order

import (
	"context"
	"io"
	"log"

	"shopadmin/internal/domain"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, name, email, street_address, city, postal_code, country, line_items, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, &domain.StorageError{Op: "list orders", Err: err}
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.StreetAddress, &o.City, &o.PostalCode, &o.Country, &o.LineItems, &o.CreatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan order", Err: err}
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, &domain.StorageError{Op: "read order rows", Err: err}
	}
	return result, nil
}
