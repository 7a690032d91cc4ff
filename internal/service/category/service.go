package category

import (
	"context"
	"strings"

	"shopadmin/internal/domain"
	categoryrepo "shopadmin/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the full mutable state of a category. Updates replace parent
// and properties wholesale; there is no partial merge.
type Input struct {
	Name       string                   `json:"name" binding:"required"`
	ParentID   string                   `json:"parentId"`
	Properties []domain.AttributeSchema `json:"properties"`
}

// List returns all categories with Parent populated one level deep from the
// same snapshot.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Category, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	for i := range list {
		if list[i].ParentID == "" {
			continue
		}
		if parent, ok := byID[list[i].ParentID]; ok {
			list[i].Parent = &parent
		}
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Category, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, domain.Category{
		Name:       strings.TrimSpace(in.Name),
		ParentID:   in.ParentID,
		Properties: normalizeProperties(in.Properties),
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Category, error) {
	if id == "" {
		return nil, domain.NewValidationError("category id is required")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Category{
		ID:         id,
		Name:       strings.TrimSpace(in.Name),
		ParentID:   in.ParentID,
		Properties: normalizeProperties(in.Properties),
	})
}

// Delete removes a category. With existing children it fails with
// HasChildrenError unless force is set, in which case the direct children are
// deleted together with the category. Grandchildren are left in place with a
// dangling parent reference.
func (s *Service) Delete(ctx context.Context, id string, force bool) error {
	if id == "" {
		return domain.NewValidationError("category id is required")
	}

	children, err := s.repo.ListByParent(ctx, id)
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return s.repo.Delete(ctx, id)
	}

	if !force {
		names := make([]string, 0, len(children))
		for _, c := range children {
			names = append(names, c.Name)
		}
		return &domain.HasChildrenError{Children: names}
	}
	return s.repo.DeleteWithChildren(ctx, id)
}

// Resolve returns the inherited attribute schema for a category over a fresh
// snapshot of the category tree.
func (s *Service) Resolve(ctx context.Context, id string) ([]domain.AttributeSchema, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveAttributes(id, list), nil
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("category name is required")
	}
	for _, attr := range in.Properties {
		if strings.TrimSpace(attr.Name) == "" {
			return domain.NewValidationError("attribute name is required")
		}
		switch attr.Type {
		case "", domain.AttributeTypeText, domain.AttributeTypeNumber:
		default:
			return domain.NewValidationError("attribute %q has unknown type %q", attr.Name, attr.Type)
		}
	}
	return nil
}

func normalizeProperties(props []domain.AttributeSchema) []domain.AttributeSchema {
	out := make([]domain.AttributeSchema, 0, len(props))
	for _, attr := range props {
		if attr.Type == "" {
			attr.Type = domain.AttributeTypeText
		}
		out = append(out, attr)
	}
	return out
}
