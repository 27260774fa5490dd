package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryCache локальный кеш для запуска без Redis
type MemoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, name string, dst interface{}) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok || (c.ttl > 0 && c.now().After(e.expiresAt)) {
		return false, nil
	}
	if err := json.Unmarshal(e.raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *MemoryCache) Set(_ context.Context, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[name] = memoryEntry{raw: raw, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}
