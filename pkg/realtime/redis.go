package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coffee-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const channelPrefix = "coffeebooking:changes"

// RedisNotifier delivers change events over Redis pub/sub so every app
// instance sees mutations made by any of them.
type RedisNotifier struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisNotifier(config utils.RedisConfig, log *zap.Logger) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", config.Addr, err)
	}

	return &RedisNotifier{
		client: client,
		log:    log.With(zap.String("component", "realtime")),
	}, nil
}

func channelFor(table string) string {
	return fmt.Sprintf("%s:%s", channelPrefix, table)
}

func (n *RedisNotifier) Publish(ctx context.Context, event Event) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	if err := n.client.Publish(ctx, channelFor(event.Table), data).Err(); err != nil {
		n.log.Error("Failed to publish change event",
			zap.Error(err),
			zap.String("table", event.Table),
			zap.String("type", string(event.Type)),
		)
		return fmt.Errorf("publish change event for %s: %w", event.Table, err)
	}

	return nil
}

// Subscribe opens a pub/sub channel for one table. The returned cancel func
// closes the subscription; the event channel is closed after that.
func (n *RedisNotifier) Subscribe(ctx context.Context, table string) (<-chan Event, func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	pubsub := n.client.Subscribe(subCtx, channelFor(table))

	// Wait for subscription confirmation
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("subscribe to %s changes: %w", table, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer func() {
			_ = pubsub.Close()
			close(events)
		}()

		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					n.log.Warn("Failed to unmarshal change event",
						zap.Error(err),
						zap.String("table", table),
					)
					continue
				}

				select {
				case events <- event:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return events, cancel, nil
}

func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
