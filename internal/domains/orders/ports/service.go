package ports

import (
	"context"

	"github.com/sushikitos/cart-api/internal/domains/orders/domain"
)

// Messenger turns a rendered order message into an outbound deep link
// addressed to the vendor's fixed recipient.
type Messenger interface {
	OrderLink(message string) string
}

// Receipt is what the customer gets back after a successful submission.
type Receipt struct {
	OrderID string
	Link    string
	Message string
}

// Service finalizes carts into outbound orders.
type Service interface {
	Submit(ctx context.Context, customer domain.Customer) (*Receipt, error)
}
