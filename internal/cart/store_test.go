package cart

import (
	"context"
	"testing"

	"github.com/okorolenko/storefront/internal/kv"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	s, err := New(context.Background(), mem)
	require.NoError(t, err)
	return s, mem
}

func TestAddItemMergesSameProduct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Name: "Headphones", Price: 79.99, Quantity: 2}))
	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Name: "Headphones", Price: 79.99, Quantity: 3}))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity)
	require.Equal(t, 5, s.ItemCount())
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Quantity: 0}))
	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Quantity: -4}))
	require.Empty(t, s.Items())
}

func TestRemoveThenAddStartsFresh(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 10, Quantity: 7}))
	require.NoError(t, s.RemoveItem(ctx, "1"))
	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 10, Quantity: 2}))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.RemoveItem(context.Background(), "ghost"))
	require.Empty(t, s.Items())
}

func TestUpdateQuantityReplaces(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 10, Quantity: 3}))
	require.NoError(t, s.UpdateQuantity(ctx, "1", 9))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, 9, items[0].Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 10, Quantity: 3}))
	require.NoError(t, s.UpdateQuantity(ctx, "1", 0))
	require.Empty(t, s.Items())

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 10, Quantity: 3}))
	require.NoError(t, s.UpdateQuantity(ctx, "1", -2))
	require.Empty(t, s.Items())
}

func TestTotalTracksQuantityChanges(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 79.99, Quantity: 2}))
	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "2", Price: 249.99, Quantity: 1}))
	require.Equal(t, 409.97, s.Total())

	require.NoError(t, s.UpdateQuantity(ctx, "1", 1))
	require.Equal(t, 329.98, s.Total())

	require.NoError(t, s.Clear(ctx))
	require.Equal(t, 0.0, s.Total())
	require.Equal(t, 0, s.ItemCount())
}

func TestRehydrateFromStorage(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Name: "Headphones", Price: 79.99, Quantity: 2}))

	reloaded, err := New(ctx, mem)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	require.Equal(t, "Headphones", items[0].Name)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, 159.98, reloaded.Total())
}

func TestEveryMutationPersists(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddItem(ctx, AddInput{ProductID: "1", Price: 5, Quantity: 1}))
	require.NoError(t, s.Clear(ctx))

	raw, ok, err := mem.Read(ctx, kv.KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, "[]", string(raw))
}
