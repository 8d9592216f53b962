package cache

import (
	"context"
	"sync"
	"time"
)

// memoryCache is an in-process Cache used when no Valkey URL is
// configured, and in tests. Expired entries are dropped lazily on read.
type memoryCache struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time // zero = no expiration
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() Cache {
	return &memoryCache{
		items: make(map[string]memoryItem),
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, nil
	}

	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, nil
	}

	return item.data, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	item := memoryItem{data: value}
	if expiration > 0 {
		item.expiresAt = time.Now().Add(expiration)
	}

	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Close() error {
	c.mu.Lock()
	c.items = make(map[string]memoryItem)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Health(ctx context.Context) error {
	return nil
}
