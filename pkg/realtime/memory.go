package realtime

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MemoryNotifier is an in-process bus used in tests and single-node runs
// when Redis is not reachable.
type MemoryNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]*memorySub
	log    *zap.Logger
}

type memorySub struct {
	ch   chan Event
	once sync.Once
}

func (s *memorySub) shut() {
	s.once.Do(func() { close(s.ch) })
}

func NewMemoryNotifier(log *zap.Logger) *MemoryNotifier {
	return &MemoryNotifier{
		subs: make(map[string]map[int]*memorySub),
		log:  log.With(zap.String("component", "realtime")),
	}
}

func (n *MemoryNotifier) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, sub := range n.subs[event.Table] {
		select {
		case sub.ch <- event:
		default:
			// slow subscriber, drop rather than block the publisher
			n.log.Warn("Dropping change event for slow subscriber",
				zap.String("table", event.Table))
		}
	}

	return nil
}

func (n *MemoryNotifier) Subscribe(ctx context.Context, table string) (<-chan Event, func(), error) {
	sub := &memorySub{ch: make(chan Event, 8)}

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]*memorySub)
	}
	n.subs[table][id] = sub
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		delete(n.subs[table], id)
		n.mu.Unlock()
		sub.shut()
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return sub.ch, cancel, nil
}

func (n *MemoryNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, subs := range n.subs {
		for id, sub := range subs {
			sub.shut()
			delete(subs, id)
		}
	}

	return nil
}
