package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "kairo/backend/internal/domain/invoice"
)

// IssuedInvoiceRepository persists issued invoices in PostgreSQL.
type IssuedInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewIssuedInvoiceRepository constructs a repository.
func NewIssuedInvoiceRepository(pool *pgxpool.Pool) *IssuedInvoiceRepository {
	return &IssuedInvoiceRepository{pool: pool}
}

// Create inserts a new issued invoice.
func (r *IssuedInvoiceRepository) Create(ctx context.Context, inv *domain.Issued) error {
	const query = `
INSERT INTO issued_invoices (id, invoice_number, customer_id, issued_at, amount, advance_payment, paid, cancelled, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.InvoiceNumber,
		inv.CustomerID,
		inv.IssuedAt,
		inv.Amount,
		inv.AdvancePayment,
		inv.Paid,
		inv.Cancelled,
		inv.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateNumber
		}
		return err
	}
	return nil
}

// GetByID fetches an issued invoice by id.
func (r *IssuedInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Issued, error) {
	const query = `
SELECT id, invoice_number, customer_id, issued_at, amount, advance_payment, paid, cancelled, notes
FROM issued_invoices WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	inv, err := scanIssued(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

// List returns all issued invoices, newest first.
func (r *IssuedInvoiceRepository) List(ctx context.Context) ([]*domain.Issued, error) {
	const query = `
SELECT id, invoice_number, customer_id, issued_at, amount, advance_payment, paid, cancelled, notes
FROM issued_invoices
ORDER BY issued_at DESC
`
	return r.queryIssued(ctx, query)
}

// ListByCustomer returns the invoices issued against one customer.
func (r *IssuedInvoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Issued, error) {
	const query = `
SELECT id, invoice_number, customer_id, issued_at, amount, advance_payment, paid, cancelled, notes
FROM issued_invoices
WHERE customer_id = $1
ORDER BY issued_at DESC
`
	return r.queryIssued(ctx, query, customerID)
}

// Update writes invoice updates to the database.
func (r *IssuedInvoiceRepository) Update(ctx context.Context, inv *domain.Issued) error {
	const query = `
UPDATE issued_invoices
SET invoice_number = $2,
    customer_id = $3,
    amount = $4,
    advance_payment = $5,
    paid = $6,
    cancelled = $7,
    notes = $8
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.InvoiceNumber,
		inv.CustomerID,
		inv.Amount,
		inv.AdvancePayment,
		inv.Paid,
		inv.Cancelled,
		inv.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateNumber
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an issued invoice by id.
func (r *IssuedInvoiceRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM issued_invoices WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LatestNumber returns the highest invoice number assigned so far.
func (r *IssuedInvoiceRepository) LatestNumber(ctx context.Context) (string, error) {
	const query = `
SELECT invoice_number
FROM issued_invoices
ORDER BY invoice_number DESC
LIMIT 1
`
	var number string
	if err := r.pool.QueryRow(ctx, query).Scan(&number); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return number, nil
}

func (r *IssuedInvoiceRepository) queryIssued(ctx context.Context, query string, args ...any) ([]*domain.Issued, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Issued
	for rows.Next() {
		inv, err := scanIssued(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func scanIssued(row pgx.Row) (*domain.Issued, error) {
	var inv domain.Issued
	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.CustomerID,
		&inv.IssuedAt,
		&inv.Amount,
		&inv.AdvancePayment,
		&inv.Paid,
		&inv.Cancelled,
		&inv.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// ReceivedInvoiceRepository persists received invoices in PostgreSQL.
type ReceivedInvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewReceivedInvoiceRepository constructs a repository.
func NewReceivedInvoiceRepository(pool *pgxpool.Pool) *ReceivedInvoiceRepository {
	return &ReceivedInvoiceRepository{pool: pool}
}

// Create inserts a new received invoice.
func (r *ReceivedInvoiceRepository) Create(ctx context.Context, inv *domain.Received) error {
	const query = `
INSERT INTO received_invoices (id, invoice_number, supplier_id, received_at, amount)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.InvoiceNumber,
		inv.SupplierID,
		inv.ReceivedAt,
		inv.Amount,
	)
	return err
}

// GetByID fetches a received invoice by id.
func (r *ReceivedInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Received, error) {
	const query = `
SELECT id, invoice_number, supplier_id, received_at, amount
FROM received_invoices WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	var inv domain.Received
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.ReceivedAt, &inv.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// List returns all received invoices, newest first.
func (r *ReceivedInvoiceRepository) List(ctx context.Context) ([]*domain.Received, error) {
	const query = `
SELECT id, invoice_number, supplier_id, received_at, amount
FROM received_invoices
ORDER BY received_at DESC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Received
	for rows.Next() {
		var inv domain.Received
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.SupplierID, &inv.ReceivedAt, &inv.Amount); err != nil {
			return nil, err
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// Update writes received-invoice updates to the database.
func (r *ReceivedInvoiceRepository) Update(ctx context.Context, inv *domain.Received) error {
	const query = `
UPDATE received_invoices
SET invoice_number = $2,
    supplier_id = $3,
    amount = $4
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		inv.ID,
		inv.InvoiceNumber,
		inv.SupplierID,
		inv.Amount,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a received invoice by id.
func (r *ReceivedInvoiceRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM received_invoices WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
