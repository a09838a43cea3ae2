package wishlist

import (
	"context"
	"testing"
	"time"

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

func TestAddIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, AddInput{ProductID: "3", Name: "Backpack", Price: 129.99}))
	require.NoError(t, s.Add(ctx, AddInput{ProductID: "3", Name: "Backpack", Price: 129.99}))

	require.Len(t, s.Items(), 1)
	require.True(t, s.Contains("3"))
}

func TestAddThenRemoveLeavesEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, AddInput{ProductID: "3"}))
	require.NoError(t, s.Add(ctx, AddInput{ProductID: "3"}))
	require.NoError(t, s.Remove(ctx, "3"))

	require.Empty(t, s.Items())
	require.False(t, s.Contains("3"))
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.Remove(context.Background(), "ghost"))
	require.Empty(t, s.Items())
}

func TestAddStampsTime(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.Add(context.Background(), AddInput{ProductID: "5"}))
	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, fixed, items[0].AddedAt)
	require.NotEmpty(t, items[0].ID)
}

func TestIndependentFromCartKey(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, AddInput{ProductID: "1"}))

	_, ok, err := mem.Read(ctx, kv.KeyCart)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRehydrateFromStorage(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, AddInput{ProductID: "7", Name: "Skincare Set", Price: 89.99}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Add(ctx, AddInput{ProductID: "2", Name: "Watch", Price: 249.99}))

	reloaded, err := New(ctx, mem)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 1)
	require.Equal(t, "2", items[0].ProductID)
	require.True(t, reloaded.Contains("2"))
}
