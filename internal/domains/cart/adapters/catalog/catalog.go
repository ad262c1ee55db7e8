// Package catalog adapts the catalog domain service to the cart's lookup port.
package catalog

import (
	"context"
	"errors"
	"fmt"

	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
	catalogports "github.com/sushikitos/cart-api/internal/domains/catalog/ports"
)

var _ cartports.Catalog = (*Lookup)(nil)

// Lookup bridges cart adds to the catalog service.
type Lookup struct {
	service catalogports.Service
}

func NewLookup(service catalogports.Service) *Lookup {
	return &Lookup{service: service}
}

func (l *Lookup) FindProduct(ctx context.Context, id string) (*cartports.CatalogEntry, error) {
	product, err := l.service.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", cartports.ErrProductNotFound, id)
		}
		return nil, err
	}
	return &cartports.CatalogEntry{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		ImageRef:  product.ImageURL,
	}, nil
}
