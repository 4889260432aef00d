package external

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// DefaultRedisCachePrefix namespaces cache keys so Clear never touches other data in the same database
const DefaultRedisCachePrefix = "weatherdash:cache:"

// NewRedisClient dials Redis and verifies the connection. The client is shared
// by the response cache and the redis favorites backend.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return client, nil
}

// RedisCacheProvider implements CacheProvider port using Redis
type RedisCacheProvider struct {
	client *redis.Client
	prefix string
	hits   int64
	misses int64
}

func NewRedisCacheProvider(client *redis.Client, prefix string) *RedisCacheProvider {
	if prefix == "" {
		prefix = DefaultRedisCachePrefix
	}
	return &RedisCacheProvider{client: client, prefix: prefix}
}

func (r *RedisCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the cache prefix
func (r *RedisCacheProvider) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan operation failed", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return errors.NewExternalAPIError("redis clear operation failed", err)
	}
	return nil
}

func (r *RedisCacheProvider) GetStats() ports.CacheStats {
	return buildStats(atomic.LoadInt64(&r.hits), atomic.LoadInt64(&r.misses))
}

func (r *RedisCacheProvider) RecordHit() {
	atomic.AddInt64(&r.hits, 1)
}

func (r *RedisCacheProvider) RecordMiss() {
	atomic.AddInt64(&r.misses, 1)
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProvider) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
