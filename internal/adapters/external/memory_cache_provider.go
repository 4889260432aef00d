package external

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// MemoryCacheProvider is a process-local CacheProvider. Expired entries are
// dropped lazily on read.
type MemoryCacheProvider struct {
	data   map[string]memoryCacheItem
	mutex  sync.RWMutex
	now    func() time.Time
	hits   int64
	misses int64
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if c.now().After(item.expiresAt) {
		c.mutex.Lock()
		if current, ok := c.data[key]; ok && c.now().After(current.expiresAt) {
			delete(c.data, key)
		}
		c.mutex.Unlock()
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      stored,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	return exists && !c.now().After(item.expiresAt), nil
}

func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]memoryCacheItem)
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return buildStats(atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses))
}

func (c *MemoryCacheProvider) RecordHit() {
	atomic.AddInt64(&c.hits, 1)
}

func (c *MemoryCacheProvider) RecordMiss() {
	atomic.AddInt64(&c.misses, 1)
}

func buildStats(hits, misses int64) ports.CacheStats {
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
