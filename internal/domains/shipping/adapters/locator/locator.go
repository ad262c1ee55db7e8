// Package locator provides platform location adapters for the shipping probe.
package locator

import (
	"context"

	"github.com/sushikitos/cart-api/internal/domains/shipping/ports"
	"github.com/sushikitos/cart-api/internal/platform/geo"
)

var (
	_ ports.Locator = Static{}
	_ ports.Locator = Unavailable{}
)

// Static always resolves to a fixed coordinate. Used for demos and smoke
// deployments where the customer position is supplied via configuration.
type Static struct {
	Coordinate geo.Coordinate
}

func (s Static) Locate(_ context.Context) (geo.Coordinate, error) {
	return s.Coordinate, nil
}

// Unavailable models a runtime with no location capability: every request
// fails immediately with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Locate(_ context.Context) (geo.Coordinate, error) {
	return geo.Coordinate{}, ports.ErrUnavailable
}
