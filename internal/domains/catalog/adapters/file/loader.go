// Package file loads catalog products from a JSON menu file.
package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
)

type productRecord struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// LoadProducts parses a JSON array of products from path. Every entry must
// satisfy the product invariants; a single bad entry fails the whole load so
// a broken menu never reaches customers.
func LoadProducts(path string) ([]*domain.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var records []productRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	products := make([]*domain.Product, 0, len(records))
	for i, rec := range records {
		product, err := domain.NewProduct(rec.ID, rec.Name, rec.Price, rec.Image)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		products = append(products, product)
	}
	return products, nil
}
