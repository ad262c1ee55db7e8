package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyID       = errors.New("product id must not be empty")
	ErrEmptyName     = errors.New("product name must not be empty")
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Product is one sellable entry in the vendor's menu.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

// NewProduct validates and constructs a Product.
func NewProduct(id, name string, price decimal.Decimal, imageURL string) (*Product, error) {
	p := &Product{ID: id, Name: name, Price: price, ImageURL: imageURL}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces invariants on the product.
func (p *Product) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
