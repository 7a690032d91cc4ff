package product

import (
	"context"
	"math"
	"strings"

	"shopadmin/internal/domain"
	productrepo "shopadmin/internal/repository/product"
	"github.com/google/uuid"
)

type Service struct {
	repo       productrepo.Repository
	categories categoryReader
}

type categoryReader interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
}

func New(repo productrepo.Repository, categories categoryReader) *Service {
	return &Service{repo: repo, categories: categories}
}

type CreateInput struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Price       *float64          `json:"price"`
	CategoryID  string            `json:"category"`
	Images      []string          `json:"images"`
	Properties  map[string]string `json:"properties"`
}

// UpdateInput patches title, description and price only when supplied, while
// images, category and properties always replace the stored values wholesale.
type UpdateInput struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	CategoryID  string            `json:"category"`
	Images      []string          `json:"images"`
	Properties  map[string]string `json:"properties"`
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return products, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range products {
		if products[i].CategoryID == "" {
			continue
		}
		if cat, ok := byID[products[i].CategoryID]; ok {
			products[i].Category = &cat
		}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, p)
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.NewValidationError("product title is required")
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	if err := validateCategoryRef(in.CategoryID); err != nil {
		return nil, err
	}

	p := domain.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Images:      defaultImages(in.Images),
		CategoryID:  in.CategoryID,
		Properties:  defaultProperties(in.Properties),
	}
	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if id == "" {
		return nil, domain.NewValidationError("product id is required")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domain.NewValidationError("product title is required")
	}
	if in.Price != nil {
		if err := validatePrice(in.Price); err != nil {
			return nil, err
		}
	}
	if err := validateCategoryRef(in.CategoryID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := *existing
	if in.Title != nil {
		next.Title = *in.Title
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.Price != nil {
		next.Price = *in.Price
	}
	next.Images = defaultImages(in.Images)
	next.CategoryID = in.CategoryID
	next.Properties = defaultProperties(in.Properties)
	next.Category = nil

	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	s.attachCategory(ctx, updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("product id is required")
	}
	return s.repo.Delete(ctx, id)
}

// attachCategory resolves the category reference for display. A dangling
// reference (category deleted since) is tolerated and leaves Category nil.
func (s *Service) attachCategory(ctx context.Context, p *domain.Product) {
	if p == nil || p.CategoryID == "" {
		return
	}
	cat, err := s.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return
	}
	p.Category = cat
}

func validatePrice(price *float64) error {
	if price == nil {
		return domain.NewValidationError("product price is required")
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) {
		return domain.NewValidationError("product price must be a finite number")
	}
	if *price < 0 {
		return domain.NewValidationError("product price must be non-negative")
	}
	return nil
}

func validateCategoryRef(id string) error {
	if id == "" {
		return nil
	}
	if err := uuid.Validate(id); err != nil {
		return domain.NewValidationError("invalid category id %q", id)
	}
	return nil
}

func defaultImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func defaultProperties(props map[string]string) map[string]string {
	if props == nil {
		return map[string]string{}
	}
	return props
}
