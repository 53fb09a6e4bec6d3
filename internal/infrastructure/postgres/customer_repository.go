package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "kairo/backend/internal/domain/customer"
)

// CustomerRepository persists customers in PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository constructs a repository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
INSERT INTO customers (id, name, address, email, phone, epf_number, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Address,
		customer.Email,
		customer.Phone,
		customer.EPFNumber,
		customer.CreatedAt,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByID fetches a customer by id.
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const query = `
SELECT id, name, address, email, phone, epf_number, created_at, updated_at
FROM customers WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

// List returns all customers sorted by name.
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	const query = `
SELECT id, name, address, email, phone, epf_number, created_at, updated_at
FROM customers
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// Update writes customer updates to the database.
func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
UPDATE customers
SET name = $2,
    address = $3,
    email = $4,
    phone = $5,
    epf_number = $6,
    updated_at = $7
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Address,
		customer.Email,
		customer.Phone,
		customer.EPFNumber,
		customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer by id.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM customers WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Email,
		&c.Phone,
		&c.EPFNumber,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
