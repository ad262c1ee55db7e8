package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

// Service owns the cart state machine. Mutations are serialized by a mutex so
// concurrent HTTP requests cannot interleave, and every mutation is written
// through to the durable store before returning.
type Service struct {
	repo     ports.Repository
	catalog  ports.Catalog
	shipping ports.ShippingQuote
	notifier ports.Notifier

	mu      sync.Mutex
	cart    *domain.Cart
	version uint64
}

// Option customizes optional service collaborators.
type Option func(*Service)

// WithNotifier injects the notification sink for item-added events.
func WithNotifier(n ports.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// NewService wires the cart service with its dependencies. The cart starts
// empty; call Restore to load persisted state.
func NewService(repo ports.Repository, catalog ports.Catalog, shipping ports.ShippingQuote, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		catalog:  catalog,
		shipping: shipping,
		cart:     domain.NewCart(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Restore loads the persisted cart state. A corrupt store leaves the cart
// empty and returns the load error so the caller can log a warning; the
// service stays usable either way.
func (s *Service) Restore(ctx context.Context) error {
	lines, err := s.repo.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Restore(lines)
	if err != nil {
		s.cart = domain.NewCart()
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}

// AddItem resolves the product against the catalog and adds one unit to the
// cart. Unknown ids are rejected with ErrUnknownProduct instead of creating a
// line with undefined fields.
func (s *Service) AddItem(ctx context.Context, productID string) (*ports.Summary, error) {
	product, err := s.catalog.FindProduct(ctx, productID)
	if err != nil {
		return nil, mapError(err)
	}

	s.mu.Lock()
	line, err := s.cart.Add(product.ID, product.Name, product.UnitPrice, product.ImageRef)
	if err != nil {
		s.mu.Unlock()
		return nil, mapError(err)
	}
	summary, persistErr := s.persistLocked(ctx)
	s.mu.Unlock()

	if persistErr != nil {
		return nil, persistErr
	}
	if s.notifier != nil {
		s.notifier.ItemAdded(ctx, line)
	}
	return summary, nil
}

// SetQuantity sets the quantity of an existing line; a quantity of zero or
// less removes it. Unknown product ids are a no-op and nothing is persisted.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity int) (*ports.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cart.SetQuantity(productID, quantity) {
		return s.summaryLocked(), nil
	}
	return s.persistLocked(ctx)
}

// Clear removes all lines unconditionally.
func (s *Service) Clear(ctx context.Context) (*ports.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
	return s.persistLocked(ctx)
}

// Summary derives the order totals from the current cart and shipping cost.
func (s *Service) Summary(_ context.Context) (*ports.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked(), nil
}

// persistLocked writes the full state through to the repository and bumps the
// version counter. The in-memory mutation stands even when the write fails;
// the wrapped storage error is surfaced to the caller.
func (s *Service) persistLocked(ctx context.Context) (*ports.Summary, error) {
	s.version++
	if err := s.repo.Save(ctx, s.cart.Lines()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return s.summaryLocked(), nil
}

func (s *Service) summaryLocked() *ports.Summary {
	subtotal := s.cart.Subtotal()
	shipping := decimal.Zero
	if s.shipping != nil {
		shipping = s.shipping.CurrentCost()
	}
	return &ports.Summary{
		Lines:        s.cart.Lines(),
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal.Add(shipping),
		ItemCount:    s.cart.ItemCount(),
		Version:      s.version,
	}
}

var _ ports.Service = (*Service)(nil)
