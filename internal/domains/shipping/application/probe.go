package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sushikitos/cart-api/internal/domains/shipping/ports"
)

// Probe issues a single asynchronous location request at startup and feeds the
// outcome into the shipping service. The continuation runs exactly once; after
// that the probe is inert for the rest of the process lifetime. There is no
// retry and no cancellation path: a locator that never returns simply leaves
// the standard cost in place.
type Probe struct {
	locator ports.Locator
	service *Service
	logger  *slog.Logger
	once    sync.Once
	done    chan struct{}
}

// NewProbe wires a probe. A nil locator means the runtime offers no location
// capability; the probe then resolves to unavailable immediately.
func NewProbe(locator ports.Locator, service *Service, logger *slog.Logger) *Probe {
	if logger == nil {
		logger = slog.Default()
	}
	return &Probe{
		locator: locator,
		service: service,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Start launches the single location request in the background. Subsequent
// calls are no-ops.
func (p *Probe) Start(ctx context.Context) {
	p.once.Do(func() {
		go p.run(ctx)
	})
}

// Done is closed once the probe has resolved, for tests and graceful shutdown.
func (p *Probe) Done() <-chan struct{} {
	return p.done
}

func (p *Probe) run(ctx context.Context) {
	defer close(p.done)
	if p.locator == nil {
		p.service.ResolveUnavailable(ctx)
		return
	}
	coordinate, err := p.locator.Locate(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "location probe failed", slog.String("error", err.Error()))
		p.service.ResolveUnavailable(ctx)
		return
	}
	p.service.ResolveFromCoordinate(ctx, coordinate)
}
