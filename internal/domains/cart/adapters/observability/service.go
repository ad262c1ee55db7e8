package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

const tracerName = "github.com/sushikitos/cart-api/internal/domains/cart/adapters/observability/service"

// Service decorates the cart application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core cart service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// AddItem adds one unit of a product with instrumentation.
func (s *Service) AddItem(ctx context.Context, productID string) (*ports.Summary, error) {
	ctx, span := s.startSpan(ctx, "Service.AddItem", attribute.String("cart.product_id", productID))
	defer span.End()

	s.logInfo(ctx, "adding item", slog.String("product_id", productID))
	summary, err := s.inner.AddItem(ctx, productID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to add item", slog.String("product_id", productID))
	}
	s.metrics.recordItemAdded(ctx, productID)
	s.logInfo(ctx, "item added",
		slog.String("product_id", productID),
		slog.Int("item_count", summary.ItemCount),
		slog.String("subtotal", summary.Subtotal.String()),
	)
	return summary, nil
}

// SetQuantity sets or removes a line with instrumentation.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity int) (*ports.Summary, error) {
	ctx, span := s.startSpan(ctx, "Service.SetQuantity",
		attribute.String("cart.product_id", productID),
		attribute.Int("cart.quantity", quantity),
	)
	defer span.End()

	s.logInfo(ctx, "setting quantity", slog.String("product_id", productID), slog.Int("quantity", quantity))
	summary, err := s.inner.SetQuantity(ctx, productID, quantity)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to set quantity", slog.String("product_id", productID))
	}
	s.metrics.recordQuantitySet(ctx)
	s.logInfo(ctx, "quantity set", slog.String("product_id", productID), slog.Int("item_count", summary.ItemCount))
	return summary, nil
}

// Clear empties the cart with instrumentation.
func (s *Service) Clear(ctx context.Context) (*ports.Summary, error) {
	ctx, span := s.startSpan(ctx, "Service.Clear")
	defer span.End()

	s.logInfo(ctx, "clearing cart")
	summary, err := s.inner.Clear(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to clear cart")
	}
	s.metrics.recordCleared(ctx)
	s.logInfo(ctx, "cart cleared")
	return summary, nil
}

// Summary derives totals with instrumentation.
func (s *Service) Summary(ctx context.Context) (*ports.Summary, error) {
	ctx, span := s.startSpan(ctx, "Service.Summary")
	defer span.End()

	summary, err := s.inner.Summary(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to derive summary")
	}
	span.SetAttributes(
		attribute.Int("cart.item_count", summary.ItemCount),
		attribute.String("cart.total", summary.Total.String()),
	)
	return summary, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	itemsAdded   metric.Int64Counter
	quantitySets metric.Int64Counter
	cartsCleared metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	itemsAdded, _ := m.Int64Counter("cart.service.items_added", metric.WithDescription("Number of items added to carts"))
	quantitySets, _ := m.Int64Counter("cart.service.quantity_sets", metric.WithDescription("Number of quantity updates"))
	cartsCleared, _ := m.Int64Counter("cart.service.cleared", metric.WithDescription("Number of cart clears"))
	return serviceMetrics{
		itemsAdded:   itemsAdded,
		quantitySets: quantitySets,
		cartsCleared: cartsCleared,
	}
}

func (m serviceMetrics) recordItemAdded(ctx context.Context, productID string) {
	addCounter(ctx, m.itemsAdded, 1, attribute.String("cart.product_id", productID))
}

func (m serviceMetrics) recordQuantitySet(ctx context.Context) {
	addCounter(ctx, m.quantitySets, 1)
}

func (m serviceMetrics) recordCleared(ctx context.Context) {
	addCounter(ctx, m.cartsCleared, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
