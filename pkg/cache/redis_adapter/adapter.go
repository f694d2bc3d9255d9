package redis_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard/pkg/cache"

	"github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client    redis.UniversalClient
	keyPrefix string
}

// New wraps an existing client. Every key is namespaced with keyPrefix so
// several deployments can share one Redis database.
func New(client redis.UniversalClient, keyPrefix string) *RedisAdapter {
	return &RedisAdapter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", cache.ErrCacheMiss, key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, r.key(key), value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	if err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

func (r *RedisAdapter) Ping(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *RedisAdapter) key(key string) string {
	if r.keyPrefix == "" {
		return key
	}
	return r.keyPrefix + ":" + key
}
