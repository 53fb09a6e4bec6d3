package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "kairo/backend/internal/domain/product"
)

// Service encapsulates product use cases.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a product service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for product creation.
type CreateInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// UpdateInput encapsulates partial product updates.
type UpdateInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

// Create stores a new product after validation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	if _, err := s.repo.GetByName(ctx, input.Name); err == nil {
		return nil, domain.ErrNameExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.nowFunc().UTC()
	product := &domain.Product{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Category:  strings.TrimSpace(input.Category),
		Price:     input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List retrieves all products.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Get fetches a product by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies partial updates to a product.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		newName := strings.TrimSpace(*input.Name)
		if newName == "" {
			return nil, errors.New("name cannot be empty")
		}
		if newName != product.Name {
			if _, err := s.repo.GetByName(ctx, newName); err == nil {
				return nil, domain.ErrNameExists
			} else if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
		*input.Name = newName
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, errors.New("price cannot be negative")
	}

	product.Update(input.Name, input.Category, input.Price)

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return s.repo.Delete(ctx, id)
}
