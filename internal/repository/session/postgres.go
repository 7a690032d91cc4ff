package session

import (
	"context"
	"errors"

	"shopadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, token string) (*Session, error) {
	const q = `SELECT token, email, expires_at FROM sessions WHERE token = $1`
	var s Session
	err := r.pool.QueryRow(ctx, q, token).Scan(&s.Token, &s.Email, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "get session", Err: err}
	}
	return &s, nil
}
