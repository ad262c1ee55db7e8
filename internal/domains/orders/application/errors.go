package application

import (
	"errors"
	"fmt"

	"github.com/sushikitos/cart-api/internal/domains/orders/domain"
)

// ErrInvalidCustomer signals the submission violated a customer invariant.
var ErrInvalidCustomer = errors.New("invalid customer input")

// ErrEmptyCart blocks submitting an order with no lines.
var ErrEmptyCart = errors.New("cart is empty")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingName) || errors.Is(err, domain.ErrMissingAddress) {
		return fmt.Errorf("%w: %w", ErrInvalidCustomer, err)
	}
	return err
}
