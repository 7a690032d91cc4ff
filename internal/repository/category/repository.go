package category

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByParent(ctx context.Context, parentID string) ([]domain.Category, error)
	Insert(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	DeleteWithChildren(ctx context.Context, id string) error
}
