package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

func testLines() []domain.Line {
	return []domain.Line{
		{ProductID: "sushi1", Name: "Sushi Roll Clásico", UnitPrice: decimal.NewFromInt(95), ImageRef: "media/productos/sushi1.jpg", Quantity: 2},
		{ProductID: "sushi2", Name: "Sushi Roll Especial", UnitPrice: decimal.NewFromInt(120), ImageRef: "media/productos/sushi2.jpg", Quantity: 1},
	}
}

func TestLoad_MissingFileYieldsEmptyCart(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "cart.json"))

	lines, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "cart.json"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testLines()))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byID := map[string]domain.Line{}
	for _, line := range loaded {
		byID[line.ProductID] = line
	}
	for _, want := range testLines() {
		got, ok := byID[want.ProductID]
		require.True(t, ok)
		require.Equal(t, want.Name, got.Name)
		require.True(t, want.UnitPrice.Equal(got.UnitPrice))
		require.Equal(t, want.ImageRef, got.ImageRef)
		require.Equal(t, want.Quantity, got.Quantity)
	}
}

func TestLoad_IdempotentUnderRepeatedReload(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "cart.json"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testLines()))

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	second, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSave_RewritesWholeState(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "cart.json"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testLines()))
	require.NoError(t, repo.Save(ctx, nil))

	lines, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestLoad_CorruptFileReportsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewRepository(path)
	lines, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ports.ErrCorruptState)
	require.Empty(t, lines)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "cart.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Save(context.Background(), testLines()))
	_, err := os.Stat(path)
	require.NoError(t, err)
}
