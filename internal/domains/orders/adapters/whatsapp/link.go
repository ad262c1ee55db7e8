// Package whatsapp builds wa.me deep links for outbound order messages.
package whatsapp

import (
	"net/url"
	"strings"

	"github.com/sushikitos/cart-api/internal/domains/orders/ports"
)

var _ ports.Messenger = (*DeepLink)(nil)

// DeepLink addresses order messages to a fixed WhatsApp recipient.
// The recipient is the full international number without the leading '+'.
type DeepLink struct {
	recipient string
}

func NewDeepLink(recipient string) *DeepLink {
	return &DeepLink{recipient: recipient}
}

func (d *DeepLink) OrderLink(message string) string {
	// wa.me expects %20 for spaces, not the '+' QueryEscape produces.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + d.recipient + "?text=" + encoded
}
