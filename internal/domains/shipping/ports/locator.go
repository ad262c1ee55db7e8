package ports

import (
	"context"
	"errors"

	"github.com/sushikitos/cart-api/internal/platform/geo"
)

// ErrUnavailable collapses every locator failure mode: missing capability,
// denied permission, timeout, platform error. Callers fall back to the
// standard shipping cost and never show this to the customer.
var ErrUnavailable = errors.New("location unavailable")

// Locator resolves the customer's current position once.
type Locator interface {
	Locate(ctx context.Context) (geo.Coordinate, error)
}
