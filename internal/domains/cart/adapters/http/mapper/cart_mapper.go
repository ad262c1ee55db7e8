// Package mapper converts cart application state to transport payloads.
package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

// Line is the wire shape of one cart line.
type Line struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Summary is the wire shape the rendering layer pulls after every mutation.
type Summary struct {
	Items        []Line          `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	Version      uint64          `json:"version"`
}

// FromSummary maps the derived cart summary onto the wire shape.
func FromSummary(summary *ports.Summary) Summary {
	if summary == nil {
		return Summary{Items: []Line{}}
	}
	items := make([]Line, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, fromLine(line))
	}
	return Summary{
		Items:        items,
		Subtotal:     summary.Subtotal,
		ShippingCost: summary.ShippingCost,
		Total:        summary.Total,
		ItemCount:    summary.ItemCount,
		Version:      summary.Version,
	}
}

func fromLine(line domain.Line) Line {
	return Line{
		ID:        line.ProductID,
		Name:      line.Name,
		UnitPrice: line.UnitPrice,
		Image:     line.ImageRef,
		Quantity:  line.Quantity,
		LineTotal: line.Total(),
	}
}
