package product

import (
	"context"
	"errors"
	"io"
	"log"

	"shopadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const productColumns = `id::text, title, description, price, images, COALESCE(category_id::text, ''), properties, created_at, updated_at`

// isMalformedID reports a 22P02 uuid cast failure; a malformed id behaves
// like an unknown one.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, &domain.StorageError{Op: "list products", Err: err}
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			return nil, &domain.StorageError{Op: "scan product", Err: err}
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, &domain.StorageError{Op: "read product rows", Err: err}
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := scanProduct(r.pool.QueryRow(ctx, q, id).Scan, &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, &domain.StorageError{Op: "get product", Err: err}
	}
	return &p, nil
}

func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (title, description, price, images, category_id, properties)
VALUES ($1, $2, $3, COALESCE($4, '[]'::jsonb), NULLIF($5, '')::uuid, COALESCE($6, '{}'::jsonb))
RETURNING id::text, created_at, updated_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.Title, p.Description, p.Price, p.Images, p.CategoryID, p.Properties).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		r.logger.Printf("product repo: insert title=%q error=%v", p.Title, err)
		return nil, &domain.StorageError{Op: "insert product", Err: err}
	}
	r.logger.Printf("product repo: inserted id=%s title=%q", out.ID, out.Title)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET title = $2,
    description = $3,
    price = $4,
    images = COALESCE($5, '[]'::jsonb),
    category_id = NULLIF($6, '')::uuid,
    properties = COALESCE($7, '{}'::jsonb),
    updated_at = now()
WHERE id = $1
RETURNING created_at, updated_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.Title, p.Description, p.Price, p.Images, p.CategoryID, p.Properties).
		Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%s error=%v", p.ID, err)
		return nil, &domain.StorageError{Op: "update product", Err: err}
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrNotFound
		}
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return &domain.StorageError{Op: "delete product", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func scanProduct(scan func(dest ...any) error, p *domain.Product) error {
	return scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Images, &p.CategoryID, &p.Properties, &p.CreatedAt, &p.UpdatedAt)
}
