package ports

import (
	"context"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
)

// Service exposes catalog lookups to transports and sibling domains.
type Service interface {
	FindProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
}
