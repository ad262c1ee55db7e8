package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound signals the id does not resolve against the catalog.
var ErrProductNotFound = errors.New("product not found in catalog")

// CatalogEntry is the product data the cart copies onto a new line.
type CatalogEntry struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
}

// Catalog is the read-only product lookup consulted on every add.
type Catalog interface {
	FindProduct(ctx context.Context, id string) (*CatalogEntry, error)
}
