package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/platform/geo"
)

// Service exposes the process-wide shipping cost and its resolution entry points.
type Service interface {
	// CurrentCost returns the cost applied to order totals right now.
	CurrentCost() decimal.Decimal
	// ResolveFromCoordinate prices shipping from the customer's position and
	// returns the resolved cost.
	ResolveFromCoordinate(ctx context.Context, customer geo.Coordinate) decimal.Decimal
	// ResolveUnavailable applies the standard cost after a failed location
	// attempt and returns it.
	ResolveUnavailable(ctx context.Context) decimal.Decimal
}
