package application

import (
	"context"
	"time"

	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
	"github.com/sushikitos/cart-api/internal/domains/orders/domain"
	"github.com/sushikitos/cart-api/internal/domains/orders/ports"
)

// Service finalizes the current cart into an outbound order message and
// clears the cart on success.
type Service struct {
	cart      cartports.Service
	messenger ports.Messenger
	vendor    string
	now       func() time.Time
}

// NewService wires the orders service. vendorName heads the rendered message.
func NewService(cart cartports.Service, messenger ports.Messenger, vendorName string) *Service {
	return &Service{
		cart:      cart,
		messenger: messenger,
		vendor:    vendorName,
		now:       time.Now,
	}
}

// Submit validates the customer, renders the order message from the current
// cart, builds the outbound link, and clears the cart. Missing name or
// address blocks submission; an empty cart is rejected.
func (s *Service) Submit(ctx context.Context, customer domain.Customer) (*ports.Receipt, error) {
	if err := customer.Validate(); err != nil {
		return nil, mapError(err)
	}
	summary, err := s.cart.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if summary.ItemCount == 0 {
		return nil, ErrEmptyCart
	}

	message := renderMessage(s.vendor, summary, customer)
	order, err := domain.NewOrder(customer, message, s.now())
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := s.cart.Clear(ctx); err != nil {
		return nil, err
	}
	return &ports.Receipt{
		OrderID: order.ID.String(),
		Link:    s.messenger.OrderLink(order.Message),
		Message: order.Message,
	}, nil
}

var _ ports.Service = (*Service)(nil)
