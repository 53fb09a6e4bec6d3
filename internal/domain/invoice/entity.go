package invoice

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates an invoice could not be located.
	ErrNotFound = errors.New("invoice not found")
	// ErrDuplicateNumber signals invoice-number uniqueness breaches.
	ErrDuplicateNumber = errors.New("invoice number already exists")
	// ErrCancelled rejects mutations of a cancelled invoice.
	ErrCancelled = errors.New("invoice is cancelled")
)

// Issued is an invoice raised against a customer.
type Issued struct {
	ID             string    `json:"id"`
	InvoiceNumber  string    `json:"invoiceNumber"`
	CustomerID     string    `json:"customerId"`
	IssuedAt       time.Time `json:"issuedAt"`
	Amount         float64   `json:"amount"`
	AdvancePayment float64   `json:"advancePayment"`
	Paid           bool      `json:"paid"`
	Cancelled      bool      `json:"cancelled"`
	Notes          string    `json:"notes"`
}

// Received is an invoice received from a supplier.
type Received struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	SupplierID    string    `json:"supplierId"`
	ReceivedAt    time.Time `json:"receivedAt"`
	Amount        float64   `json:"amount"`
}
