package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	productdomain "kairo/backend/internal/domain/product"
	domain "kairo/backend/internal/domain/stock"
)

// Service encapsulates stock-keeping use cases.
type Service struct {
	repo     domain.Repository
	products productdomain.Repository
	nowFunc  func() time.Time
}

// NewService constructs a stock service.
func NewService(repo domain.Repository, products productdomain.Repository) *Service {
	return &Service{
		repo:     repo,
		products: products,
		nowFunc:  time.Now,
	}
}

// Set replaces the on-hand quantity for a product, creating the record if
// none exists yet.
func (s *Service) Set(ctx context.Context, productID string, quantity int) (*domain.Record, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if quantity < 0 {
		return nil, errors.New("quantity cannot be negative")
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		UpdatedAt: s.nowFunc().UTC(),
	}
	if existing, err := s.repo.GetByProductID(ctx, productID); err == nil {
		record.ID = existing.ID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Adjust shifts the on-hand quantity by delta, rejecting adjustments that
// would drive it negative.
func (s *Service) Adjust(ctx context.Context, productID string, delta int) (*domain.Record, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("product id is required")
	}

	existing, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}

	existing.Quantity += delta
	existing.UpdatedAt = s.nowFunc().UTC()
	if err := s.repo.Upsert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Get fetches the stock record for a product.
func (s *Service) Get(ctx context.Context, productID string) (*domain.Record, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	return s.repo.GetByProductID(ctx, productID)
}

// List retrieves all stock records with product names.
func (s *Service) List(ctx context.Context) ([]*domain.Entry, error) {
	return s.repo.List(ctx)
}

// Delete removes the stock record for a product.
func (s *Service) Delete(ctx context.Context, productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return fmt.Errorf("product id is required")
	}
	return s.repo.Delete(ctx, productID)
}
