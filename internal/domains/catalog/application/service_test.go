package application_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sushikitos/cart-api/internal/domains/catalog/adapters/memory"
	"github.com/sushikitos/cart-api/internal/domains/catalog/application"
	"github.com/sushikitos/cart-api/internal/domains/catalog/domain"
	"github.com/sushikitos/cart-api/internal/domains/catalog/ports"
)

func TestFindProductReturnsSeededEntry(t *testing.T) {
	service := application.NewService(memory.NewSeededRepository())

	product, err := service.FindProduct(context.Background(), "sushi1")
	require.NoError(t, err)
	require.Equal(t, "Sushi Roll Clásico", product.Name)
	require.True(t, product.Price.Equal(decimal.NewFromInt(95)))
}

func TestFindProductUnknownID(t *testing.T) {
	service := application.NewService(memory.NewSeededRepository())

	_, err := service.FindProduct(context.Background(), "sushi999")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestFindProductEmptyID(t *testing.T) {
	service := application.NewService(memory.NewSeededRepository())

	_, err := service.FindProduct(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrEmptyID)
}

func TestListProductsPreservesMenuOrder(t *testing.T) {
	first, err := domain.NewProduct("roll-a", "Roll A", decimal.NewFromInt(80), "")
	require.NoError(t, err)
	second, err := domain.NewProduct("roll-b", "Roll B", decimal.NewFromInt(110), "")
	require.NoError(t, err)
	service := application.NewService(memory.NewRepository(second, first))

	products, err := service.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "roll-b", products[0].ID)
	require.Equal(t, "roll-a", products[1].ID)
}
