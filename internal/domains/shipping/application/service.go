package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/shipping/domain"
	"github.com/sushikitos/cart-api/internal/domains/shipping/ports"
	"github.com/sushikitos/cart-api/internal/platform/geo"
)

// Service owns the process-wide shipping cost. The cost starts at the policy's
// standard tier and transitions on each location resolution; subscribers are
// notified on every transition so derived totals are never stale.
type Service struct {
	policy domain.Policy
	store  geo.Coordinate
	logger *slog.Logger

	mu          sync.RWMutex
	cost        decimal.Decimal
	subscribers []func(decimal.Decimal)
}

// NewService wires the shipping service with its policy and the fixed store
// location. The initial cost is the standard tier.
func NewService(policy domain.Policy, store geo.Coordinate, logger *slog.Logger) (*Service, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		policy: policy,
		store:  store,
		logger: logger,
		cost:   policy.StandardCost,
	}, nil
}

// CurrentCost returns the cost applied to order totals right now.
func (s *Service) CurrentCost() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cost
}

// Subscribe registers a callback invoked after every cost transition.
func (s *Service) Subscribe(fn func(decimal.Decimal)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// ResolveFromCoordinate prices shipping from the customer's position.
func (s *Service) ResolveFromCoordinate(ctx context.Context, customer geo.Coordinate) decimal.Decimal {
	distance := geo.DistanceKm(customer, s.store)
	cost := s.policy.CostFor(&distance)
	s.logger.InfoContext(ctx, "shipping cost resolved from location",
		slog.Float64("distance_km", distance),
		slog.String("cost", cost.String()),
	)
	return s.apply(cost)
}

// ResolveUnavailable applies the standard cost after a failed location attempt.
func (s *Service) ResolveUnavailable(ctx context.Context) decimal.Decimal {
	cost := s.policy.CostFor(nil)
	s.logger.InfoContext(ctx, "location unavailable, using standard shipping cost",
		slog.String("cost", cost.String()),
	)
	return s.apply(cost)
}

func (s *Service) apply(cost decimal.Decimal) decimal.Decimal {
	s.mu.Lock()
	s.cost = cost
	subscribers := make([]func(decimal.Decimal), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(cost)
	}
	return cost
}

var _ ports.Service = (*Service)(nil)
