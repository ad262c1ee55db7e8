package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/sushikitos/cart-api/internal/domains/cart/domain"
	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
	"github.com/sushikitos/cart-api/internal/domains/orders/domain"
)

type fakeCart struct {
	lines   []cartdomain.Line
	cleared int
}

func (f *fakeCart) AddItem(context.Context, string) (*cartports.Summary, error) {
	panic("not used")
}

func (f *fakeCart) SetQuantity(context.Context, string, int) (*cartports.Summary, error) {
	panic("not used")
}

func (f *fakeCart) Clear(context.Context) (*cartports.Summary, error) {
	f.cleared++
	f.lines = nil
	return f.summary(), nil
}

func (f *fakeCart) Summary(context.Context) (*cartports.Summary, error) {
	return f.summary(), nil
}

func (f *fakeCart) summary() *cartports.Summary {
	subtotal := decimal.Zero
	count := 0
	for _, line := range f.lines {
		subtotal = subtotal.Add(line.Total())
		count += line.Quantity
	}
	shipping := decimal.NewFromInt(40)
	return &cartports.Summary{
		Lines:        f.lines,
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal.Add(shipping),
		ItemCount:    count,
	}
}

type fakeMessenger struct {
	lastMessage string
}

func (f *fakeMessenger) OrderLink(message string) string {
	f.lastMessage = message
	return "https://wa.me/5218110729156?text=stub"
}

func filledCart() *fakeCart {
	return &fakeCart{lines: []cartdomain.Line{
		{ProductID: "sushi1", Name: "Sushi Roll Clásico", UnitPrice: decimal.NewFromInt(95), Quantity: 2},
	}}
}

func validCustomer() domain.Customer {
	return domain.Customer{Name: "Ana", Phone: "8110000000", Address: "Calle 1 #23", Notes: "sin picante"}
}

func TestSubmit_MissingNameBlocksSubmission(t *testing.T) {
	cart := filledCart()
	svc := NewService(cart, &fakeMessenger{}, "SUSHI KITO'S")

	customer := validCustomer()
	customer.Name = "  "
	_, err := svc.Submit(context.Background(), customer)
	require.ErrorIs(t, err, ErrInvalidCustomer)
	require.ErrorIs(t, err, domain.ErrMissingName)
	require.Zero(t, cart.cleared)
}

func TestSubmit_MissingAddressBlocksSubmission(t *testing.T) {
	cart := filledCart()
	svc := NewService(cart, &fakeMessenger{}, "SUSHI KITO'S")

	customer := validCustomer()
	customer.Address = ""
	_, err := svc.Submit(context.Background(), customer)
	require.ErrorIs(t, err, ErrInvalidCustomer)
	require.ErrorIs(t, err, domain.ErrMissingAddress)
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	svc := NewService(&fakeCart{}, &fakeMessenger{}, "SUSHI KITO'S")

	_, err := svc.Submit(context.Background(), validCustomer())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestSubmit_RendersMessageAndClearsCart(t *testing.T) {
	cart := filledCart()
	messenger := &fakeMessenger{}
	svc := NewService(cart, messenger, "SUSHI KITO'S")

	receipt, err := svc.Submit(context.Background(), validCustomer())
	require.NoError(t, err)

	_, err = uuid.Parse(receipt.OrderID)
	require.NoError(t, err)
	require.Equal(t, "https://wa.me/5218110729156?text=stub", receipt.Link)
	require.Equal(t, 1, cart.cleared)

	msg := messenger.lastMessage
	require.Contains(t, msg, "*Nuevo pedido SUSHI KITO'S*")
	require.Contains(t, msg, "• 2 x Sushi Roll Clásico - $190.00")
	require.Contains(t, msg, "*Subtotal:* $190.00")
	require.Contains(t, msg, "*Envío:* Se paga al repartidor según zona")
	require.Contains(t, msg, "*Total:* $190.00")
	require.Contains(t, msg, "*Cliente:* Ana")
	require.Contains(t, msg, "*Teléfono:* 8110000000")
	require.Contains(t, msg, "*Dirección:* Calle 1 #23")
	require.Contains(t, msg, "*Notas:* sin picante")
}

func TestSubmit_OptionalFieldsOmittedWhenBlank(t *testing.T) {
	cart := filledCart()
	messenger := &fakeMessenger{}
	svc := NewService(cart, messenger, "SUSHI KITO'S")

	customer := validCustomer()
	customer.Phone = ""
	customer.Notes = "   "
	_, err := svc.Submit(context.Background(), customer)
	require.NoError(t, err)

	require.NotContains(t, messenger.lastMessage, "*Teléfono:*")
	require.NotContains(t, messenger.lastMessage, "*Notas:*")
}
