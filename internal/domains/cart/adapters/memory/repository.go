package memory

import (
	"context"
	"sync"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory cart store for tests and deployments that opt
// out of durability.
type Repository struct {
	mu    sync.RWMutex
	lines []domain.Line
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Load(_ context.Context) ([]domain.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := make([]domain.Line, len(r.lines))
	copy(lines, r.lines)
	return lines, nil
}

func (r *Repository) Save(_ context.Context, lines []domain.Line) error {
	clone := make([]domain.Line, len(lines))
	copy(clone, lines)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = clone
	return nil
}
