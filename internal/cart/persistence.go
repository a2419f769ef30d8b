package cart

import (
	"context"
	"sync"
)

// Persistence stores the full item collection under a single key per cart.
// Implementations: Redis (production) and in-memory (tests, fallback).
type Persistence interface {
	Load(ctx context.Context, key string) ([]Item, error)
	Save(ctx context.Context, key string, items []Item) error
	Clear(ctx context.Context, key string) error
}

// MemoryPersistence keeps carts in process memory only.
type MemoryPersistence struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{carts: make(map[string][]Item)}
}

func (m *MemoryPersistence) Load(ctx context.Context, key string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]Item, len(m.carts[key]))
	copy(items, m.carts[key])
	return items, nil
}

func (m *MemoryPersistence) Save(ctx context.Context, key string, items []Item) error {
	stored := make([]Item, len(items))
	copy(stored, items)

	m.mu.Lock()
	m.carts[key] = stored
	m.mu.Unlock()
	return nil
}

func (m *MemoryPersistence) Clear(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.carts, key)
	m.mu.Unlock()
	return nil
}
