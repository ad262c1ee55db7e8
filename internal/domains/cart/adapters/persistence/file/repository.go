// Package file persists the cart as a single JSON document on disk, the
// server-side analog of the storefront's localStorage key.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

var _ ports.Repository = (*Repository)(nil)

// lineRecord is the wire shape: one object per product id under a single
// JSON mapping, rewritten in full on every save.
type lineRecord struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
	Qty   int             `json:"qty"`
}

// Repository stores the cart state in one JSON file. Writes are best effort
// and last-write-wins; there is no cross-process coordination.
type Repository struct {
	path string
}

func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load reads the persisted mapping. A missing file yields an empty cart; an
// undecodable file yields an empty cart plus ErrCorruptState so the caller
// can log the recovery.
func (r *Repository) Load(_ context.Context) ([]domain.Line, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ports.ErrCorruptState, err)
	}
	var records map[string]lineRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCorruptState, err)
	}

	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	// JSON objects carry no order; sort by id so the restored display order
	// is at least deterministic.
	sort.Strings(ids)

	lines := make([]domain.Line, 0, len(ids))
	for _, id := range ids {
		rec := records[id]
		lines = append(lines, domain.Line{
			ProductID: rec.ID,
			Name:      rec.Name,
			UnitPrice: rec.Price,
			ImageRef:  rec.Image,
			Quantity:  rec.Qty,
		})
	}
	return lines, nil
}

// Save rewrites the whole mapping.
func (r *Repository) Save(_ context.Context, lines []domain.Line) error {
	records := make(map[string]lineRecord, len(lines))
	for _, line := range lines {
		records[line.ProductID] = lineRecord{
			ID:    line.ProductID,
			Name:  line.Name,
			Price: line.UnitPrice,
			Image: line.ImageRef,
			Qty:   line.Quantity,
		}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cart state directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write cart state: %w", err)
	}
	return nil
}
