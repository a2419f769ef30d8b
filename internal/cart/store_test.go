package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newTestManager(persist Persistence) *Manager {
	return NewManager(persist, "test_cart", zap.NewNop())
}

func espresso() Item {
	return Item{ID: 1, Name: "Espresso", Price: 199}
}

func latte() Item {
	return Item{ID: 2, Name: "Latte", Price: 249}
}

func TestAddSameItemBumpsQuantity(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.Add(ctx, espresso())

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, 2, snapshot.TotalItems)
	assert.Equal(t, 398.0, snapshot.TotalPrice)
}

func TestTotalsAcrossItems(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.Add(ctx, espresso())
	store.Add(ctx, latte())

	snapshot := store.Snapshot()
	assert.Equal(t, 3, snapshot.TotalItems)
	assert.Equal(t, 647.0, snapshot.TotalPrice)
}

func TestDecreaseQuantityFloorsAtOne(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.Add(ctx, espresso())

	store.DecreaseQuantity(ctx, 1)
	assert.Equal(t, 1, store.Snapshot().Items[0].Quantity)

	// At quantity 1 the entry stays, lowering is a no-op
	store.DecreaseQuantity(ctx, 1)
	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.Add(ctx, latte())

	store.Remove(ctx, 1)
	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "Latte", snapshot.Items[0].Name)

	// Removing an absent id changes nothing
	store.Remove(ctx, 99)
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.IncreaseQuantity(ctx, 42)
	store.DecreaseQuantity(ctx, 42)

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestClearEmptiesCartAndPersistence(t *testing.T) {
	ctx := context.Background()
	persist := NewMemoryPersistence()
	store := newTestManager(persist).Store(ctx, "alice")

	store.Add(ctx, espresso())
	store.Clear(ctx)

	assert.Empty(t, store.Snapshot().Items)

	stored, err := persist.Load(ctx, "test_cart:alice")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCartSurvivesManagerRestart(t *testing.T) {
	ctx := context.Background()
	persist := NewMemoryPersistence()

	store := newTestManager(persist).Store(ctx, "alice")
	store.Add(ctx, espresso())
	store.Add(ctx, latte())

	// A fresh manager sees the persisted cart
	reloaded := newTestManager(persist).Store(ctx, "alice")
	snapshot := reloaded.Snapshot()
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, 448.0, snapshot.TotalPrice)
}

func TestCartsAreIsolatedByKey(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(NewMemoryPersistence())

	manager.Store(ctx, "alice").Add(ctx, espresso())
	manager.Store(ctx, "bob").Add(ctx, latte())

	assert.Equal(t, 199.0, manager.Store(ctx, "alice").Snapshot().TotalPrice)
	assert.Equal(t, 249.0, manager.Store(ctx, "bob").Snapshot().TotalPrice)
}

func TestToggleFlipsOpenState(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	assert.False(t, store.Snapshot().Open)
	assert.True(t, store.Toggle())
	assert.False(t, store.Toggle())
}

func TestManagerEvictsEmptiedCarts(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(NewMemoryPersistence())

	store := manager.Store(ctx, "alice")
	store.Add(ctx, espresso())
	require.Len(t, manager.stores, 1)

	store.Clear(ctx)
	assert.Empty(t, manager.stores)

	// A cart that comes back is rebuilt from persistence
	rebuilt := manager.Store(ctx, "alice")
	rebuilt.Add(ctx, latte())
	assert.Equal(t, 249.0, rebuilt.Snapshot().TotalPrice)

	rebuilt.Remove(ctx, latte().ID)
	assert.Empty(t, manager.stores)
}

func TestManagerKeepsOpenEmptyCart(t *testing.T) {
	ctx := context.Background()
	manager := newTestManager(NewMemoryPersistence())

	store := manager.Store(ctx, "alice")
	store.Toggle()
	store.Clear(ctx)

	// The open panel flag only lives in memory, so the store stays cached
	require.Len(t, manager.stores, 1)
	assert.True(t, manager.Store(ctx, "alice").Snapshot().Open)
}

type brokenLoad struct {
	*MemoryPersistence
}

func (b *brokenLoad) Load(ctx context.Context, key string) ([]Item, error) {
	return nil, errors.New("stored value is not valid JSON")
}

func TestUnreadableStoredCartStartsEmpty(t *testing.T) {
	ctx := context.Background()
	persist := &brokenLoad{NewMemoryPersistence()}

	store := newTestManager(persist).Store(ctx, "alice")
	assert.Empty(t, store.Snapshot().Items)

	// Still usable after the discard
	store.Add(ctx, espresso())
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	store := newTestManager(NewMemoryPersistence()).Store(ctx, "alice")

	store.Add(ctx, espresso())

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			store.Add(ctx, espresso())
			return nil
		})
		g.Go(func() error {
			store.IncreaseQuantity(ctx, 1)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	snapshot := store.Snapshot()
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 101, snapshot.Items[0].Quantity)
}
