package invoice

import "context"

// IssuedRepository defines persistence behaviours for issued invoices.
type IssuedRepository interface {
	Create(ctx context.Context, inv *Issued) error
	GetByID(ctx context.Context, id string) (*Issued, error)
	List(ctx context.Context) ([]*Issued, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Issued, error)
	Update(ctx context.Context, inv *Issued) error
	Delete(ctx context.Context, id string) error
	// LatestNumber returns the most recently assigned invoice number, or
	// ErrNotFound when no invoices exist yet.
	LatestNumber(ctx context.Context) (string, error)
}

// ReceivedRepository defines persistence behaviours for received invoices.
type ReceivedRepository interface {
	Create(ctx context.Context, inv *Received) error
	GetByID(ctx context.Context, id string) (*Received, error)
	List(ctx context.Context) ([]*Received, error)
	Update(ctx context.Context, inv *Received) error
	Delete(ctx context.Context, id string) error
}
