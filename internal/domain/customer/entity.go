package customer

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a customer could not be located.
	ErrNotFound = errors.New("customer not found")
	// ErrEmailExists signals email uniqueness constraint breaches.
	ErrEmailExists = errors.New("customer with email already exists")
)

// Customer captures the state of an individual customer account.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EPFNumber string    `json:"epfNumber"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update applies partial field updates to the customer.
func (c *Customer) Update(name, address, email, phone, epfNumber *string) {
	if name != nil {
		c.Name = *name
	}
	if address != nil {
		c.Address = *address
	}
	if email != nil {
		c.Email = *email
	}
	if phone != nil {
		c.Phone = *phone
	}
	if epfNumber != nil {
		c.EPFNumber = *epfNumber
	}
	c.UpdatedAt = time.Now().UTC()
}
