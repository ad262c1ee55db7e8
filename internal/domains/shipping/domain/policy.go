package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRadius = errors.New("near radius must be greater than zero")
	ErrNegativeCost  = errors.New("shipping costs must not be negative")
)

// Policy maps a delivery distance to a shipping cost. Two tiers: orders within
// NearRadiusKm of the store pay NearCost, everything else pays StandardCost.
// An unknown distance always resolves to StandardCost.
type Policy struct {
	NearRadiusKm float64
	NearCost     decimal.Decimal
	StandardCost decimal.Decimal
}

// DefaultPolicy returns the storefront defaults: 40 within 5 km, 60 otherwise.
func DefaultPolicy() Policy {
	return Policy{
		NearRadiusKm: 5,
		NearCost:     decimal.NewFromInt(40),
		StandardCost: decimal.NewFromInt(60),
	}
}

// Validate enforces invariants on the tier configuration.
func (p Policy) Validate() error {
	if p.NearRadiusKm <= 0 {
		return ErrInvalidRadius
	}
	if p.NearCost.IsNegative() || p.StandardCost.IsNegative() {
		return ErrNegativeCost
	}
	return nil
}

// CostFor resolves the cost for a distance in kilometers. A nil distance means
// the customer's location could not be determined.
func (p Policy) CostFor(distanceKm *float64) decimal.Decimal {
	if distanceKm == nil {
		return p.StandardCost
	}
	if *distanceKm <= p.NearRadiusKm {
		return p.NearCost
	}
	return p.StandardCost
}
