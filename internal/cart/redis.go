package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coffee-booking/pkg/utils"

	"github.com/go-redis/redis/v8"
)

// RedisPersistence stores each cart as one JSON value so carts survive
// restarts, mirroring the storefront's single storage key.
type RedisPersistence struct {
	client *redis.Client
}

func NewRedisPersistence(config utils.RedisConfig) (*RedisPersistence, error) {
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

	return &RedisPersistence{client: client}, nil
}

func (p *RedisPersistence) Load(ctx context.Context, key string) ([]Item, error) {
	raw, err := p.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("parse stored cart %s: %w", key, err)
	}

	return items, nil
}

func (p *RedisPersistence) Save(ctx context.Context, key string, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", key, err)
	}

	if err := p.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", key, err)
	}

	return nil
}

func (p *RedisPersistence) Clear(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("clear cart %s: %w", key, err)
	}
	return nil
}
