package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sushikitos/cart-api/internal/domains/cart/domain"
	"github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

type fakeCatalog struct {
	products map[string]ports.CatalogEntry
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]ports.CatalogEntry{
		"sushi1": {ID: "sushi1", Name: "Sushi Roll Clásico", UnitPrice: decimal.NewFromInt(95), ImageRef: "media/productos/sushi1.jpg"},
		"sushi2": {ID: "sushi2", Name: "Sushi Roll Especial", UnitPrice: decimal.NewFromInt(120), ImageRef: "media/productos/sushi2.jpg"},
	}}
}

func (f *fakeCatalog) FindProduct(_ context.Context, id string) (*ports.CatalogEntry, error) {
	entry, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrProductNotFound, id)
	}
	return &entry, nil
}

type fakeRepo struct {
	saved   [][]domain.Line
	initial []domain.Line
	loadErr error
	saveErr error
}

func (f *fakeRepo) Load(_ context.Context) ([]domain.Line, error) {
	return f.initial, f.loadErr
}

func (f *fakeRepo) Save(_ context.Context, lines []domain.Line) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	clone := make([]domain.Line, len(lines))
	copy(clone, lines)
	f.saved = append(f.saved, clone)
	return nil
}

type fixedQuote struct {
	cost decimal.Decimal
}

func (q fixedQuote) CurrentCost() decimal.Decimal { return q.cost }

type countingNotifier struct {
	added []domain.Line
}

func (n *countingNotifier) ItemAdded(_ context.Context, line domain.Line) {
	n.added = append(n.added, line)
}

func newTestService(repo *fakeRepo, opts ...Option) *Service {
	return NewService(repo, newFakeCatalog(), fixedQuote{cost: decimal.NewFromInt(40)}, opts...)
}

func TestAddItem_RepeatedAddsAccumulateQuantity(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	var summary *ports.Summary
	var err error
	for i := 0; i < 3; i++ {
		summary, err = svc.AddItem(ctx, "sushi1")
		require.NoError(t, err)
	}

	require.Equal(t, 3, summary.ItemCount)
	require.True(t, decimal.NewFromInt(285).Equal(summary.Subtotal))
	require.Len(t, summary.Lines, 1)
	require.Equal(t, 3, summary.Lines[0].Quantity)
}

func TestAddItem_CopiesCatalogFields(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	summary, err := svc.AddItem(context.Background(), "sushi2")
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)

	line := summary.Lines[0]
	require.Equal(t, "sushi2", line.ProductID)
	require.Equal(t, "Sushi Roll Especial", line.Name)
	require.True(t, decimal.NewFromInt(120).Equal(line.UnitPrice))
	require.Equal(t, "media/productos/sushi2.jpg", line.ImageRef)
}

func TestAddItem_UnknownProductIsRejected(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.AddItem(context.Background(), "ramen9")
	require.ErrorIs(t, err, ErrUnknownProduct)
	require.Empty(t, repo.saved)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Empty(t, summary.Lines)
}

func TestAddItem_NotifiesAndPersistsEveryMutation(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &countingNotifier{}
	svc := newTestService(repo, WithNotifier(notifier))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)

	require.Len(t, notifier.added, 2)
	require.Len(t, repo.saved, 2)
	require.Equal(t, 2, repo.saved[1][0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)

	summary, err := svc.SetQuantity(ctx, "sushi1", 0)
	require.NoError(t, err)
	require.Empty(t, summary.Lines)
	require.Zero(t, summary.ItemCount)
}

func TestSetQuantity_RemovedLineStaysRemoved(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "sushi1", 0)
	require.NoError(t, err)

	persisted := len(repo.saved)
	summary, err := svc.SetQuantity(ctx, "sushi1", 4)
	require.NoError(t, err)
	require.Empty(t, summary.Lines)
	require.Len(t, repo.saved, persisted, "no-op must not persist")
}

func TestSetQuantity_UpdatesExistingLine(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)

	summary, err := svc.SetQuantity(ctx, "sushi1", 7)
	require.NoError(t, err)
	require.Equal(t, 7, summary.ItemCount)
	require.True(t, decimal.NewFromInt(665).Equal(summary.Subtotal))
}

func TestClear_EmptiesCart(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "sushi2")
	require.NoError(t, err)

	summary, err := svc.Clear(ctx)
	require.NoError(t, err)
	require.Empty(t, summary.Lines)
	require.Zero(t, summary.ItemCount)
	require.True(t, summary.Subtotal.IsZero())
	require.Empty(t, repo.saved[len(repo.saved)-1])
}

func TestSummary_AddsShippingToSubtotal(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)
	summary, err := svc.SetQuantity(ctx, "sushi1", 2)
	require.NoError(t, err)

	require.True(t, decimal.NewFromInt(190).Equal(summary.Subtotal))
	require.True(t, decimal.NewFromInt(40).Equal(summary.ShippingCost))
	require.True(t, decimal.NewFromInt(230).Equal(summary.Total))
}

func TestSummary_VersionTracksMutations(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	ctx := context.Background()

	before, err := svc.Summary(ctx)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "sushi1")
	require.NoError(t, err)

	after, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Greater(t, after.Version, before.Version)

	_, err = svc.SetQuantity(ctx, "missing", 3)
	require.NoError(t, err)
	unchanged, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, after.Version, unchanged.Version)
}

func TestAddItem_StorageFailureSurfacesButStateStands(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "sushi1")
	require.ErrorIs(t, err, ErrStorageFailure)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, summary.ItemCount)
}

func TestRestore_LoadsPersistedState(t *testing.T) {
	repo := &fakeRepo{initial: []domain.Line{
		{ProductID: "sushi1", Name: "Sushi Roll Clásico", UnitPrice: decimal.NewFromInt(95), Quantity: 2},
	}}
	svc := newTestService(repo)

	require.NoError(t, svc.Restore(context.Background()))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, summary.ItemCount)
	require.True(t, decimal.NewFromInt(190).Equal(summary.Subtotal))
}

func TestRestore_CorruptStateFallsBackToEmptyCart(t *testing.T) {
	repo := &fakeRepo{loadErr: ports.ErrCorruptState}
	svc := newTestService(repo)

	err := svc.Restore(context.Background())
	require.ErrorIs(t, err, ErrStorageFailure)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Empty(t, summary.Lines)
}

func TestRestore_DropsInvalidPersistedLines(t *testing.T) {
	repo := &fakeRepo{initial: []domain.Line{
		{ProductID: "sushi1", UnitPrice: decimal.NewFromInt(95), Quantity: 0},
		{ProductID: "", UnitPrice: decimal.NewFromInt(10), Quantity: 1},
		{ProductID: "sushi2", UnitPrice: decimal.NewFromInt(120), Quantity: 1},
	}}
	svc := newTestService(repo)

	require.NoError(t, svc.Restore(context.Background()))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	require.Equal(t, "sushi2", summary.Lines[0].ProductID)
}
