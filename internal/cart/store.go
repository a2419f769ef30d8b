package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store owns the item collection of one cart. Every mutation writes the full
// collection through to persistence; the open flag is presentational state
// and is never persisted.
type Store struct {
	key     string
	persist Persistence
	log     *zap.Logger
	onIdle  func()

	mu    sync.Mutex
	items []Item
	open  bool
}

// Snapshot is a read-only view of the cart with its derived totals.
type Snapshot struct {
	Items      []Item
	TotalItems int
	TotalPrice float64
	Open       bool
}

func newStore(ctx context.Context, key string, persist Persistence, log *zap.Logger) *Store {
	s := &Store{
		key:     key,
		persist: persist,
		log:     log,
	}

	items, err := persist.Load(ctx, key)
	if err != nil {
		// A cart that cannot be parsed starts over empty, never fatal.
		log.Warn("Discarding unreadable stored cart",
			zap.Error(err), zap.String("cart_key", key))
		items = nil
	}
	s.items = items

	return s
}

// Add appends the item with quantity 1, or bumps the quantity of the entry
// with the same ID. Always succeeds.
func (s *Store) Add(ctx context.Context, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			s.flush(ctx)
			return
		}
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	s.flush(ctx)
}

// Remove deletes the entry with the given ID. No-op when absent.
func (s *Store) Remove(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.flush(ctx)
			s.notifyIfIdle()
			return
		}
	}
}

// IncreaseQuantity bumps the entry's quantity by one.
func (s *Store) IncreaseQuantity(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity++
			s.flush(ctx)
			return
		}
	}
}

// DecreaseQuantity lowers the entry's quantity by one, floored at 1. At
// quantity 1 it is a no-op; it never removes the entry.
func (s *Store) DecreaseQuantity(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
				s.flush(ctx)
			}
			return
		}
	}
}

// Clear empties the collection and erases the persisted value.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.persist.Clear(ctx, s.key); err != nil {
		s.log.Error("Failed to clear stored cart",
			zap.Error(err), zap.String("cart_key", s.key))
	}
	s.notifyIfIdle()
}

// Toggle flips the cart panel visibility flag.
func (s *Store) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = !s.open
	return s.open
}

// Snapshot returns a copy of the items with the derived totals.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Items:      items,
		TotalItems: TotalItems(items),
		TotalPrice: TotalPrice(items),
		Open:       s.open,
	}
}

// notifyIfIdle reports an emptied cart to the manager so it can be dropped
// from the in-memory cache. State is write-through, so a later lookup
// rebuilds the store from persistence. Callers hold s.mu.
func (s *Store) notifyIfIdle() {
	if len(s.items) == 0 && !s.open && s.onIdle != nil {
		s.onIdle()
	}
}

// flush writes the full collection through to persistence. Persistence
// failures are logged and do not fail the mutation. Callers hold s.mu.
func (s *Store) flush(ctx context.Context) {
	if err := s.persist.Save(ctx, s.key, s.items); err != nil {
		s.log.Error("Failed to persist cart",
			zap.Error(err), zap.String("cart_key", s.key))
	}
}

// Manager hands out the store for each cart key.
type Manager struct {
	persist   Persistence
	keyPrefix string
	log       *zap.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(persist Persistence, keyPrefix string, log *zap.Logger) *Manager {
	return &Manager{
		persist:   persist,
		keyPrefix: keyPrefix,
		stores:    make(map[string]*Store),
		log:       log.With(zap.String("component", "cart")),
	}
}

// Store returns the cart store for the key, loading it from persistence on
// first use.
func (m *Manager) Store(ctx context.Context, key string) *Store {
	storageKey := fmt.Sprintf("%s:%s", m.keyPrefix, key)

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[storageKey]; ok {
		return s
	}

	s := newStore(ctx, storageKey, m.persist, m.log)
	s.onIdle = func() { m.evict(storageKey) }
	m.stores[storageKey] = s
	return s
}

// evict drops the cached store for the key. A lookup after eviction loads
// the cart from persistence again, so nothing is lost for carts that come
// back. Keeps the cache from growing with every expired anonymous cookie.
func (m *Manager) evict(storageKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, storageKey)
}
