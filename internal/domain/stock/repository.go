package stock

import "context"

// Repository defines persistence behaviours for stock records.
type Repository interface {
	// Upsert creates the product's stock record or replaces its quantity.
	Upsert(ctx context.Context, record *Record) error
	GetByProductID(ctx context.Context, productID string) (*Record, error)
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, productID string) error
}
