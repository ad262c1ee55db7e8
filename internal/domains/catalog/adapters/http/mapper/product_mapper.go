// Package mapper converts catalog products to transport payloads.
package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
)

// Product is the wire shape of one menu entry.
type Product struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// FromProduct maps a domain product onto the wire shape.
func FromProduct(p *domain.Product) Product {
	if p == nil {
		return Product{}
	}
	return Product{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.ImageURL}
}

// FromProductList maps a product list onto the wire shape.
func FromProductList(products []*domain.Product) []Product {
	list := make([]Product, 0, len(products))
	for _, p := range products {
		list = append(list, FromProduct(p))
	}
	return list
}
