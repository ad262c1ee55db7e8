package ports

import (
	"context"
	"errors"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository is the read-only product source the cart consults.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
