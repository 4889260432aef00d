package storage

import (
	"context"

	"github.com/go-redis/redis/v8"
	"weatherdash.app/pkg/errors"
)

// RedisFavoritesStorage keeps favorites in a redis list, replaced atomically on save
type RedisFavoritesStorage struct {
	client *redis.Client
	key    string
}

func NewRedisFavoritesStorage(client *redis.Client, key string) *RedisFavoritesStorage {
	return &RedisFavoritesStorage{client: client, key: key}
}

func (s *RedisFavoritesStorage) Load(ctx context.Context) ([]string, error) {
	cities, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, errors.NewDatabaseError("failed to load favorites from redis", err)
	}
	if cities == nil {
		return []string{}, nil
	}
	return cities, nil
}

func (s *RedisFavoritesStorage) Save(ctx context.Context, cities []string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(cities) > 0 {
			values := make([]interface{}, len(cities))
			for i, city := range cities {
				values[i] = city
			}
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return errors.NewDatabaseError("failed to save favorites to redis", err)
	}
	return nil
}

func (s *RedisFavoritesStorage) GetStorageName() string {
	return "redis"
}
