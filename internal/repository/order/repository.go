package order

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
}
