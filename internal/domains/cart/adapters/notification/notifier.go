// Package notification delivers cart events to the user-facing notification
// layer. The server-side stand-in for the storefront toast is a structured
// log entry the frontend polls the summary against.
package notification

import (
	"context"
	"log/slog"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier writes item-added events to the process logger.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) ItemAdded(ctx context.Context, line domain.Line) {
	n.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", line.ProductID),
		slog.String("name", line.Name),
		slog.Int("quantity", line.Quantity),
	)
}
