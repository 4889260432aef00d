package external

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// CacheBackend is a cache provider that also tracks its own hit ratio
type CacheBackend interface {
	ports.CacheProvider
	ports.CacheMetrics
}

type CacheProviderFactory struct {
	// shared is reused for the redis backend when the app already holds a client
	shared *redis.Client
}

func NewCacheProviderFactory(shared *redis.Client) *CacheProviderFactory {
	return &CacheProviderFactory{shared: shared}
}

func (f *CacheProviderFactory) CreateCacheProvider(ctx context.Context, cfg *config.CacheConfig) (CacheBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		client := f.shared
		if client == nil {
			var err error
			client, err = NewRedisClient(ctx, &cfg.Redis)
			if err != nil {
				return nil, err
			}
		}
		return NewRedisCacheProvider(client, DefaultRedisCachePrefix), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
