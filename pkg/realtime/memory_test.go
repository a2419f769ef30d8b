package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func receive(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestMemoryNotifierDeliversPerTable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := NewMemoryNotifier(zap.NewNop())
	defer n.Close()

	orders, cancelOrders, err := n.Subscribe(ctx, "orders")
	require.NoError(t, err)
	defer cancelOrders()

	bookings, cancelBookings, err := n.Subscribe(ctx, "bookings")
	require.NoError(t, err)
	defer cancelBookings()

	require.NoError(t, n.Publish(ctx, Event{Table: "orders", Type: EventInsert, ID: "o1"}))

	event := receive(t, orders)
	assert.Equal(t, "orders", event.Table)
	assert.Equal(t, EventInsert, event.Type)
	assert.Equal(t, "o1", event.ID)
	assert.False(t, event.At.IsZero())

	// The bookings subscriber saw nothing
	select {
	case event := <-bookings:
		t.Fatalf("unexpected event on bookings: %+v", event)
	default:
	}
}

func TestMemoryNotifierFanOut(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := NewMemoryNotifier(zap.NewNop())
	defer n.Close()

	first, cancelFirst, err := n.Subscribe(ctx, "orders")
	require.NoError(t, err)
	defer cancelFirst()

	second, cancelSecond, err := n.Subscribe(ctx, "orders")
	require.NoError(t, err)
	defer cancelSecond()

	require.NoError(t, n.Publish(ctx, Event{Table: "orders", Type: EventUpdate, ID: "o1"}))

	assert.Equal(t, "o1", receive(t, first).ID)
	assert.Equal(t, "o1", receive(t, second).ID)
}

func TestMemoryNotifierCancelStopsDelivery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := NewMemoryNotifier(zap.NewNop())
	defer n.Close()

	events, cancelSub, err := n.Subscribe(ctx, "orders")
	require.NoError(t, err)

	cancelSub()
	// Cancelling twice must not panic
	cancelSub()

	_, ok := <-events
	assert.False(t, ok, "channel should be closed after cancel")

	require.NoError(t, n.Publish(ctx, Event{Table: "orders", Type: EventInsert, ID: "o1"}))
}

func TestMemoryNotifierContextCancelTearsDown(t *testing.T) {
	n := NewMemoryNotifier(zap.NewNop())
	defer n.Close()

	subCtx, cancelCtx := context.WithCancel(context.Background())
	events, _, err := n.Subscribe(subCtx, "orders")
	require.NoError(t, err)

	cancelCtx()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after context cancel")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancel")
	}
}

func TestMemoryNotifierCloseShutsAllSubscribers(t *testing.T) {
	ctx := context.Background()
	n := NewMemoryNotifier(zap.NewNop())

	orders, _, err := n.Subscribe(ctx, "orders")
	require.NoError(t, err)
	bookings, _, err := n.Subscribe(ctx, "bookings")
	require.NoError(t, err)

	require.NoError(t, n.Close())

	_, ok := <-orders
	assert.False(t, ok)
	_, ok = <-bookings
	assert.False(t, ok)
}
