package invoice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	customerdomain "kairo/backend/internal/domain/customer"
	domain "kairo/backend/internal/domain/invoice"
)

// invoiceNumberPrefix is the fixed prefix of generated invoice numbers,
// followed by a zero-padded sequence (INV-0001, INV-0002, ...).
const invoiceNumberPrefix = "INV-"

// Service encapsulates invoice bookkeeping use cases for both issued and
// received invoices.
type Service struct {
	issued    domain.IssuedRepository
	received  domain.ReceivedRepository
	customers customerdomain.Repository
	nowFunc   func() time.Time
}

// NewService constructs an invoice service.
func NewService(issued domain.IssuedRepository, received domain.ReceivedRepository, customers customerdomain.Repository) *Service {
	return &Service{
		issued:    issued,
		received:  received,
		customers: customers,
		nowFunc:   time.Now,
	}
}

// CreateIssuedInput contains the payload for issuing an invoice. An empty
// InvoiceNumber asks the service to assign the next sequential number.
type CreateIssuedInput struct {
	InvoiceNumber  string  `json:"invoiceNumber"`
	CustomerID     string  `json:"customerId"`
	Amount         float64 `json:"amount"`
	AdvancePayment float64 `json:"advancePayment"`
	Notes          string  `json:"notes"`
}

// CreateReceivedInput contains the payload for recording a received invoice.
type CreateReceivedInput struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	SupplierID    string  `json:"supplierId"`
	Amount        float64 `json:"amount"`
}

// CreateIssued raises a new invoice against a customer.
func (s *Service) CreateIssued(ctx context.Context, input CreateIssuedInput) (*domain.Issued, error) {
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	if input.CustomerID == "" {
		return nil, errors.New("customer id is required")
	}
	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.InvoiceNumber)
	if number == "" {
		next, err := s.NextNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = next
	}

	inv := &domain.Issued{
		ID:             uuid.NewString(),
		InvoiceNumber:  number,
		CustomerID:     input.CustomerID,
		IssuedAt:       s.nowFunc().UTC(),
		Amount:         input.Amount,
		AdvancePayment: input.AdvancePayment,
		Notes:          strings.TrimSpace(input.Notes),
	}

	if err := s.issued.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateIssuedInput encapsulates partial edits to an issued invoice.
type UpdateIssuedInput struct {
	Amount         *float64 `json:"amount"`
	AdvancePayment *float64 `json:"advancePayment"`
	Notes          *string  `json:"notes"`
}

// UpdateIssued edits the bookkeeping fields of an issued invoice. Cancelled
// invoices cannot be edited.
func (s *Service) UpdateIssued(ctx context.Context, id string, input UpdateIssuedInput) (*domain.Issued, error) {
	inv, err := s.GetIssued(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Cancelled {
		return nil, domain.ErrCancelled
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, errors.New("amount cannot be negative")
		}
		inv.Amount = *input.Amount
	}
	if input.AdvancePayment != nil {
		if *input.AdvancePayment < 0 {
			return nil, errors.New("advance payment cannot be negative")
		}
		inv.AdvancePayment = *input.AdvancePayment
	}
	if input.Notes != nil {
		inv.Notes = strings.TrimSpace(*input.Notes)
	}

	if err := s.issued.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListIssued retrieves all issued invoices.
func (s *Service) ListIssued(ctx context.Context) ([]*domain.Issued, error) {
	return s.issued.List(ctx)
}

// ListIssuedByCustomer retrieves the invoices issued to a single customer.
func (s *Service) ListIssuedByCustomer(ctx context.Context, customerID string) ([]*domain.Issued, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	return s.issued.ListByCustomer(ctx, customerID)
}

// GetIssued fetches an issued invoice by id.
func (s *Service) GetIssued(ctx context.Context, id string) (*domain.Issued, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return s.issued.GetByID(ctx, id)
}

// MarkPaid settles an issued invoice. Paying a cancelled invoice fails.
func (s *Service) MarkPaid(ctx context.Context, id string) (*domain.Issued, error) {
	inv, err := s.GetIssued(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Cancelled {
		return nil, domain.ErrCancelled
	}

	inv.Paid = true
	if err := s.issued.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Cancel voids an issued invoice. Cancelling twice is a no-op.
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Issued, error) {
	inv, err := s.GetIssued(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Cancelled = true
	if err := s.issued.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// DeleteIssued removes an issued invoice.
func (s *Service) DeleteIssued(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return s.issued.Delete(ctx, id)
}

// NextNumber computes the next sequential invoice number.
func (s *Service) NextNumber(ctx context.Context) (string, error) {
	latest, err := s.issued.LatestNumber(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Sprintf("%s%04d", invoiceNumberPrefix, 1), nil
		}
		return "", err
	}

	seq := 0
	if suffix, ok := strings.CutPrefix(latest, invoiceNumberPrefix); ok {
		if n, err := strconv.Atoi(suffix); err == nil {
			seq = n
		}
	}
	return fmt.Sprintf("%s%04d", invoiceNumberPrefix, seq+1), nil
}

// CreateReceived records an invoice received from a supplier.
func (s *Service) CreateReceived(ctx context.Context, input CreateReceivedInput) (*domain.Received, error) {
	input.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	input.SupplierID = strings.TrimSpace(input.SupplierID)
	if input.InvoiceNumber == "" {
		return nil, errors.New("invoice number is required")
	}
	if input.SupplierID == "" {
		return nil, errors.New("supplier id is required")
	}
	if input.Amount < 0 {
		return nil, errors.New("amount cannot be negative")
	}

	inv := &domain.Received{
		ID:            uuid.NewString(),
		InvoiceNumber: input.InvoiceNumber,
		SupplierID:    input.SupplierID,
		ReceivedAt:    s.nowFunc().UTC(),
		Amount:        input.Amount,
	}

	if err := s.received.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// UpdateReceivedInput encapsulates partial edits to a received invoice.
type UpdateReceivedInput struct {
	InvoiceNumber *string  `json:"invoiceNumber"`
	SupplierID    *string  `json:"supplierId"`
	Amount        *float64 `json:"amount"`
}

// UpdateReceived edits a received invoice.
func (s *Service) UpdateReceived(ctx context.Context, id string, input UpdateReceivedInput) (*domain.Received, error) {
	inv, err := s.GetReceived(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.InvoiceNumber != nil {
		number := strings.TrimSpace(*input.InvoiceNumber)
		if number == "" {
			return nil, errors.New("invoice number cannot be empty")
		}
		inv.InvoiceNumber = number
	}
	if input.SupplierID != nil {
		supplier := strings.TrimSpace(*input.SupplierID)
		if supplier == "" {
			return nil, errors.New("supplier id cannot be empty")
		}
		inv.SupplierID = supplier
	}
	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, errors.New("amount cannot be negative")
		}
		inv.Amount = *input.Amount
	}

	if err := s.received.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// ListReceived retrieves all received invoices.
func (s *Service) ListReceived(ctx context.Context) ([]*domain.Received, error) {
	return s.received.List(ctx)
}

// GetReceived fetches a received invoice by id.
func (s *Service) GetReceived(ctx context.Context, id string) (*domain.Received, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	return s.received.GetByID(ctx, id)
}

// DeleteReceived removes a received invoice.
func (s *Service) DeleteReceived(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required")
	}
	return s.received.Delete(ctx, id)
}
