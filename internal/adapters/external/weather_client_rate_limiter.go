package external

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// RateLimitedWeatherClient wraps a weather client with a client-side request budget
type RateLimitedWeatherClient struct {
	client  ports.WeatherClient
	limiter *rate.Limiter
}

// NewRateLimitedWeatherClient allows rps requests per second (fractional
// values allowed) with the given burst
func NewRateLimitedWeatherClient(client ports.WeatherClient, rps float64, burst int) *RateLimitedWeatherClient {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedWeatherClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedWeatherClient) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.FetchCurrent(ctx, city)
}

func (r *RateLimitedWeatherClient) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.FetchForecast(ctx, city)
}

func (r *RateLimitedWeatherClient) IsValidCity(ctx context.Context, city string) bool {
	return cityExists(ctx, r.FetchCurrent, city)
}

func (r *RateLimitedWeatherClient) GetProviderName() string {
	return fmt.Sprintf("%s [Rate Limited]", r.client.GetProviderName())
}

func (r *RateLimitedWeatherClient) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewNetworkError("rate limit wait canceled", err)
	}
	return nil
}
