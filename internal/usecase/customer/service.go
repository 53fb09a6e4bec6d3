package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "kairo/backend/internal/domain/customer"
)

// Service encapsulates customer use cases.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a customer service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// CreateInput contains the payload required for customer creation.
type CreateInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EPFNumber string `json:"epfNumber"`
}

// UpdateInput encapsulates partial customer updates.
type UpdateInput struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	EPFNumber *string `json:"epfNumber"`
}

// Create stores a new customer after validation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	now := s.nowFunc().UTC()
	customer := &domain.Customer{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Address:   strings.TrimSpace(input.Address),
		Email:     input.Email,
		Phone:     strings.TrimSpace(input.Phone),
		EPFNumber: strings.TrimSpace(input.EPFNumber),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// List retrieves all customers.
func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

// Get fetches a customer by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// Update applies partial updates to a customer.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email == "" {
			return nil, errors.New("email cannot be empty")
		}
		*input.Email = email
	}

	customer.Update(input.Name, input.Address, input.Email, input.Phone, input.EPFNumber)

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return s.repo.Delete(ctx, id)
}
