package directory

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Cache - snapshot'ın kısa süreli saklandığı katman. Redis yoksa Noop ile
// her çağrıda veritabanından okunur.
type Cache interface {
	Get(ctx context.Context, key string) (*Snapshot, bool, error)
	Set(ctx context.Context, key string, value *Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type NoopCache struct{}

func (NoopCache) Get(_ context.Context, _ string) (*Snapshot, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(_ context.Context, _ string, _ *Snapshot, _ time.Duration) error {
	return nil
}

func (NoopCache) Delete(_ context.Context, _ string) error {
	return nil
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{client: client}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Snapshot, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, false, err
	}
	return &snap, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value *Snapshot, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
