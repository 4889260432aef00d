package external

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
)

// CachedWeatherClient keeps raw provider bodies for a short TTL so repeated
// searches for the same city skip the network. Cache failures fall through
// to the wrapped client.
type CachedWeatherClient struct {
	client  ports.WeatherClient
	cache   ports.CacheProvider
	ttl     time.Duration
	metrics ports.MetricsCollector
	logger  ports.Logger
}

type CachedWeatherClientParams struct {
	Client  ports.WeatherClient
	Cache   ports.CacheProvider
	TTL     time.Duration
	Metrics ports.MetricsCollector
	Logger  ports.Logger
}

func NewCachedWeatherClient(params CachedWeatherClientParams) *CachedWeatherClient {
	return &CachedWeatherClient{
		client:  params.Client,
		cache:   params.Cache,
		ttl:     params.TTL,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

func (c *CachedWeatherClient) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return c.cached(ctx, endpointCurrent, city, c.client.FetchCurrent)
}

func (c *CachedWeatherClient) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return c.cached(ctx, endpointForecast, city, c.client.FetchForecast)
}

func (c *CachedWeatherClient) IsValidCity(ctx context.Context, city string) bool {
	return cityExists(ctx, c.FetchCurrent, city)
}

func (c *CachedWeatherClient) GetProviderName() string {
	return "cached(" + c.client.GetProviderName() + ")"
}

func (c *CachedWeatherClient) cached(ctx context.Context, endpoint, city string, fetch fetchFunc) (json.RawMessage, error) {
	key := cacheKey(endpoint, city)

	if data, err := c.cache.Get(ctx, key); err == nil {
		if c.metrics != nil {
			c.metrics.RecordCacheHit(ctx)
		}
		c.logger.Debug("Weather cache hit", ports.F("key", key))
		return json.RawMessage(data), nil
	}
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(ctx)
	}

	payload, err := fetch(ctx, city)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("Failed to cache weather response", ports.F("key", key), ports.F("error", err))
	}
	return payload, nil
}

func cacheKey(endpoint, city string) string {
	return endpoint + ":" + strings.ToLower(strings.TrimSpace(city))
}
