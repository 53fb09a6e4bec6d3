package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "kairo/backend/internal/domain/stock"
)

// StockRepository persists stock records in PostgreSQL.
type StockRepository struct {
	pool *pgxpool.Pool
}

// NewStockRepository constructs a repository.
func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

// Upsert creates the product's stock record or replaces its quantity.
func (r *StockRepository) Upsert(ctx context.Context, record *domain.Record) error {
	const query = `
INSERT INTO stock (id, product_id, quantity, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (product_id)
DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.ProductID,
		record.Quantity,
		record.UpdatedAt,
	)
	return err
}

// GetByProductID fetches the stock record for a product.
func (r *StockRepository) GetByProductID(ctx context.Context, productID string) (*domain.Record, error) {
	const query = `
SELECT id, product_id, quantity, updated_at
FROM stock WHERE product_id = $1
`
	row := r.pool.QueryRow(ctx, query, productID)
	var rec domain.Record
	if err := row.Scan(&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns stock records joined with their product names.
func (r *StockRepository) List(ctx context.Context) ([]*domain.Entry, error) {
	const query = `
SELECT s.id, s.product_id, s.quantity, s.updated_at, p.name
FROM stock s
JOIN products p ON p.id = s.product_id
ORDER BY p.name ASC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.UpdatedAt, &e.ProductName); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Delete removes the stock record for a product.
func (r *StockRepository) Delete(ctx context.Context, productID string) error {
	const query = `DELETE FROM stock WHERE product_id = $1`
	tag, err := r.pool.Exec(ctx, query, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
