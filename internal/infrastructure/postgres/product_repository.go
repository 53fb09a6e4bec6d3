package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "kairo/backend/internal/domain/product"
)

// ProductRepository persists products in PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository constructs a repository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
INSERT INTO products (id, name, category, price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameExists
		}
		return err
	}
	return nil
}

// GetByID fetches a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const query = `
SELECT id, name, category, price, created_at, updated_at
FROM products WHERE id = $1
`
	row := r.pool.QueryRow(ctx, query, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetByName fetches a product using its unique name.
func (r *ProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	const query = `
SELECT id, name, category, price, created_at, updated_at
FROM products WHERE name = $1
`
	row := r.pool.QueryRow(ctx, query, name)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// List returns all products sorted by name.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	const query = `
SELECT id, name, category, price, created_at, updated_at
FROM products
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Update writes product updates to the database.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
UPDATE products
SET name = $2,
    category = $3,
    price = $4,
    updated_at = $5
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
