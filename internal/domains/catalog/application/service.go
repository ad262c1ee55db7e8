package application

import (
	"context"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
	"github.com/sushikitos/cart-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog read use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// FindProduct loads a single product by id.
func (s *Service) FindProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrEmptyID
	}
	return s.repo.GetByID(ctx, id)
}

// ListProducts returns the full menu in stable order.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
