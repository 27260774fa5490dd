package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache JSON-кеш справочников в Redis
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создает кеш; ключи имеют вид "{prefix}:{name}"
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// Get читает значение в dst; false, если ключа нет
func (c *RedisCache) Get(ctx context.Context, name string, dst interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", name, err)
	}
	return true, nil
}

// Set сохраняет значение с TTL
func (c *RedisCache) Set(ctx context.Context, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", name, err)
	}
	if err := c.client.Set(ctx, c.key(name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", name, err)
	}
	return nil
}

func (c *RedisCache) key(name string) string {
	return c.prefix + ":" + name
}
