package stock

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates no stock record exists for the product.
	ErrNotFound = errors.New("stock record not found")
	// ErrInsufficientStock signals an adjustment that would go negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Record tracks the on-hand quantity for a single product. One record per
// product; quantity never drops below zero.
type Record struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entry is a stock record joined with its product for list views.
type Entry struct {
	Record
	ProductName string `json:"productName"`
}
