package application

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
	"github.com/sushikitos/cart-api/internal/domains/orders/domain"
)

// renderMessage builds the human-readable order text handed to the messenger.
// The printed total equals the subtotal: shipping is collected by the courier
// on delivery, as the message itself states.
func renderMessage(vendor string, summary *cartports.Summary, customer domain.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Nuevo pedido %s*\n\n", vendor)
	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "• %d x %s - %s\n", line.Quantity, line.Name, formatAmount(line.Total()))
	}
	fmt.Fprintf(&b, "\n*Subtotal:* %s", formatAmount(summary.Subtotal))
	b.WriteString("\n*Envío:* Se paga al repartidor según zona")
	fmt.Fprintf(&b, "\n*Total:* %s", formatAmount(summary.Subtotal))
	fmt.Fprintf(&b, "\n\n*Cliente:* %s", strings.TrimSpace(customer.Name))
	if phone := strings.TrimSpace(customer.Phone); phone != "" {
		fmt.Fprintf(&b, "\n*Teléfono:* %s", phone)
	}
	fmt.Fprintf(&b, "\n*Dirección:* %s", strings.TrimSpace(customer.Address))
	if notes := strings.TrimSpace(customer.Notes); notes != "" {
		fmt.Fprintf(&b, "\n*Notas:* %s", notes)
	}
	b.WriteString("\n\n_Envío se paga al repartidor según zona._")
	return b.String()
}

func formatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
