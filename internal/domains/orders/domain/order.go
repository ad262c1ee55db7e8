package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName    = errors.New("customer name is required")
	ErrMissingAddress = errors.New("customer address is required")
)

// Customer is the delivery information attached to a submitted order.
// Phone and notes are optional.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Notes   string
}

// Validate blocks submission until the required fields are present.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(c.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

// Order is a finalized submission: the rendered message plus its identity.
type Order struct {
	ID       uuid.UUID
	Customer Customer
	Message  string
	PlacedAt time.Time
}

// NewOrder assigns an identity to a rendered order message.
func NewOrder(customer Customer, message string, placedAt time.Time) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		ID:       uuid.New(),
		Customer: customer,
		Message:  message,
		PlacedAt: placedAt,
	}, nil
}
