package application

import (
	"errors"
	"fmt"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

// ErrUnknownProduct signals an add with an id absent from the catalog. The
// line is rejected rather than created with undefined fields.
var ErrUnknownProduct = errors.New("unknown product")

// ErrStorageFailure marks a durable write that did not take. The in-memory
// mutation stands; the caller decides how to surface the warning.
var ErrStorageFailure = errors.New("cart storage failure")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrProductNotFound) || errors.Is(err, domain.ErrEmptyProductID) {
		return fmt.Errorf("%w: %w", ErrUnknownProduct, err)
	}
	return err
}
