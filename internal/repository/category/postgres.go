package category

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

// isMalformedID reports a 22P02 uuid cast failure; a malformed id behaves
// like an unknown one.
func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

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

const categoryColumns = `id::text, name, COALESCE(parent_id::text, ''), properties, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("category repo: list error=%v", err)
		return nil, &domain.StorageError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	return scanCategories(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.ParentID, &c.Properties, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: get id=%s error=%v", id, err)
		return nil, &domain.StorageError{Op: "get category", Err: err}
	}
	return &c, nil
}

func (r *postgresRepo) ListByParent(ctx context.Context, parentID string) ([]domain.Category, error) {
	q := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, q, parentID)
	if err != nil {
		if isMalformedID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: list by parent=%s error=%v", parentID, err)
		return nil, &domain.StorageError{Op: "list child categories", Err: err}
	}
	defer rows.Close()

	result, err := scanCategories(rows)
	if err != nil {
		if isMalformedID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Insert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, parent_id, properties)
VALUES ($1, NULLIF($2, '')::uuid, COALESCE($3, '[]'::jsonb))
RETURNING id::text, created_at, updated_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.Name, c.ParentID, c.Properties).
		Scan(&out.ID, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		r.logger.Printf("category repo: insert name=%q error=%v", c.Name, err)
		return nil, &domain.StorageError{Op: "insert category", Err: err}
	}
	r.logger.Printf("category repo: inserted id=%s name=%q", out.ID, out.Name)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $2,
    parent_id = NULLIF($3, '')::uuid,
    properties = COALESCE($4, '[]'::jsonb),
    updated_at = now()
WHERE id = $1
RETURNING created_at, updated_at
`
	out := c
	err := r.pool.QueryRow(ctx, q, c.ID, c.Name, c.ParentID, c.Properties).
		Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("category repo: update id=%s error=%v", c.ID, err)
		return nil, &domain.StorageError{Op: "update category", Err: err}
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrNotFound
		}
		r.logger.Printf("category repo: delete id=%s error=%v", id, err)
		return &domain.StorageError{Op: "delete category", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteWithChildren removes the category's direct children and then the
// category itself inside one transaction, so a crash mid-cascade cannot leave
// only one of the two steps applied.
func (r *postgresRepo) DeleteWithChildren(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return &domain.StorageError{Op: "begin cascade delete", Err: err}
	}
	defer tx.Rollback(ctx)

	children, err := tx.Exec(ctx, `DELETE FROM categories WHERE parent_id = $1`, id)
	if err != nil {
		if isMalformedID(err) {
			return domain.ErrNotFound
		}
		r.logger.Printf("category repo: cascade delete children of id=%s error=%v", id, err)
		return &domain.StorageError{Op: "delete child categories", Err: err}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("category repo: cascade delete id=%s error=%v", id, err)
		return &domain.StorageError{Op: "delete category", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.StorageError{Op: "commit cascade delete", Err: err}
	}
	r.logger.Printf("category repo: deleted id=%s children=%d", id, children.RowsAffected())
	return nil
}

func scanCategories(rows pgx.Rows) ([]domain.Category, error) {
	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID, &c.Properties, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan category", Err: err}
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "read category rows", Err: err}
	}
	return result, nil
}
