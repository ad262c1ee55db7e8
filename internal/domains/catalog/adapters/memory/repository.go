package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
	"github.com/sushikitos/cart-api/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory read-only product catalog.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	order    []string
}

// NewRepository builds a catalog from the given products, preserving order.
func NewRepository(products ...*domain.Product) *Repository {
	r := &Repository{products: map[string]*domain.Product{}}
	for _, p := range products {
		if p == nil {
			continue
		}
		if _, ok := r.products[p.ID]; !ok {
			r.order = append(r.order, p.ID)
		}
		clone := *p
		r.products[p.ID] = &clone
	}
	return r
}

// NewSeededRepository returns the demo menu shipped with the storefront.
func NewSeededRepository() *Repository {
	classic, _ := domain.NewProduct("sushi1", "Sushi Roll Clásico", decimal.NewFromInt(95), "media/productos/sushi1.jpg")
	special, _ := domain.NewProduct("sushi2", "Sushi Roll Especial", decimal.NewFromInt(120), "media/productos/sushi2.jpg")
	return NewRepository(classic, special)
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.order))
	for _, id := range r.order {
		clone := *r.products[id]
		list = append(list, &clone)
	}
	return list, nil
}
