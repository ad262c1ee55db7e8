package ports

import (
	"context"
	"errors"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
)

// ErrCorruptState marks a persisted cart state that could not be decoded.
// Callers recover by starting from an empty cart.
var ErrCorruptState = errors.New("corrupt cart state")

// Repository is the durable cart store. The whole state is rewritten on every
// save; writes are best effort and last-write-wins across processes.
type Repository interface {
	// Load reads the persisted lines. A missing state yields an empty slice
	// and no error; an undecodable state yields an empty slice and
	// ErrCorruptState.
	Load(ctx context.Context) ([]domain.Line, error)
	// Save replaces the persisted state with the given lines.
	Save(ctx context.Context, lines []domain.Line) error
}
