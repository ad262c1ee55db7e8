package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID = errors.New("product id must not be empty")
	ErrNegativePrice  = errors.New("unit price must not be negative")
)

// Line is one product entry in the cart with its own quantity. A line with
// quantity below one never exists: it is removed from the cart instead.
type Line struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
	Quantity  int
}

// Total returns unit price times quantity for this line.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the aggregate mapping product ids to lines. Insertion order is
// preserved so the display order stays stable across mutations.
type Cart struct {
	lines map[string]*Line
	order []string
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{lines: map[string]*Line{}}
}

// Restore rebuilds a cart from persisted lines. Lines violating invariants
// (blank id, negative price, quantity below one) are silently dropped so a
// stale or hand-edited store never corrupts the session.
func Restore(lines []Line) *Cart {
	cart := NewCart()
	for _, line := range lines {
		if line.ProductID == "" || line.UnitPrice.IsNegative() || line.Quantity < 1 {
			continue
		}
		if _, ok := cart.lines[line.ProductID]; ok {
			continue
		}
		clone := line
		cart.lines[line.ProductID] = &clone
		cart.order = append(cart.order, line.ProductID)
	}
	return cart
}

// Add creates a quantity-1 line for the product, or increments the existing
// line by one. It returns a copy of the resulting line.
func (c *Cart) Add(productID, name string, unitPrice decimal.Decimal, imageRef string) (Line, error) {
	if productID == "" {
		return Line{}, ErrEmptyProductID
	}
	if unitPrice.IsNegative() {
		return Line{}, ErrNegativePrice
	}
	if existing, ok := c.lines[productID]; ok {
		existing.Quantity++
		return *existing, nil
	}
	line := &Line{ProductID: productID, Name: name, UnitPrice: unitPrice, ImageRef: imageRef, Quantity: 1}
	c.lines[productID] = line
	c.order = append(c.order, productID)
	return *line, nil
}

// SetQuantity sets the quantity of an existing line. A quantity below one
// removes the line entirely. Unknown product ids are a no-op. It reports
// whether the cart changed.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	line, ok := c.lines[productID]
	if !ok {
		return false
	}
	if quantity <= 0 {
		c.remove(productID)
		return true
	}
	line.Quantity = quantity
	return true
}

// Clear removes all lines unconditionally.
func (c *Cart) Clear() {
	c.lines = map[string]*Line{}
	c.order = nil
}

// Lines returns copies of all lines in stable display order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

// Subtotal sums unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, id := range c.order {
		subtotal = subtotal.Add(c.lines[id].Total())
	}
	return subtotal
}

// ItemCount sums quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, id := range c.order {
		count += c.lines[id].Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) remove(productID string) {
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
