package realtime

import (
	"context"
	"time"
)

// EventType classifies a change on a watched table.
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is a change notification for one row of a watched table.
type Event struct {
	Table string    `json:"table"`
	Type  EventType `json:"type"`
	ID    string    `json:"id"`
	At    time.Time `json:"at"`
}

// Notifier is the change-notification bus. Publish is fire-and-forget from
// the caller's perspective; Subscribe returns a stream of events for one
// table plus a cancel func that must be called to tear the channel down.
type Notifier interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(ctx context.Context, table string) (<-chan Event, func(), error)
	Close() error
}
