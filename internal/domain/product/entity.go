package product

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a product could not be located.
	ErrNotFound = errors.New("product not found")
	// ErrNameExists signals name uniqueness constraint breaches.
	ErrNameExists = errors.New("product with name already exists")
)

// Product captures the state of an individual catalogue product. Stock levels
// live in the stock ledger, not on the product itself.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update applies partial field updates to the product.
func (p *Product) Update(name, category *string, price *float64) {
	if name != nil {
		p.Name = *name
	}
	if category != nil {
		p.Category = *category
	}
	if price != nil {
		p.Price = *price
	}
	p.UpdatedAt = time.Now().UTC()
}
