package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
)

// Summary is the derived order state the rendering layer pulls after every
// mutation. It is recomputed on each read, never cached.
type Summary struct {
	Lines        []domain.Line
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
	ItemCount    int
	// Version increments on every mutation so pollers can detect change.
	Version uint64
}

// ShippingQuote exposes the current process-wide shipping cost.
type ShippingQuote interface {
	CurrentCost() decimal.Decimal
}

// Notifier receives cart lifecycle events for the notification layer.
type Notifier interface {
	ItemAdded(ctx context.Context, line domain.Line)
}

// Service is the cart use-case surface consumed by transports and decorators.
type Service interface {
	AddItem(ctx context.Context, productID string) (*Summary, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (*Summary, error)
	Clear(ctx context.Context) (*Summary, error)
	Summary(ctx context.Context) (*Summary, error)
}
