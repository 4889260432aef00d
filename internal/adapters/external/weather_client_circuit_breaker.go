package external

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// CircuitBreakerWeatherClient stops calling the provider after repeated
// transport or server failures. It never retries; an open circuit fails fast.
type CircuitBreakerWeatherClient struct {
	client  ports.WeatherClient
	circuit *gobreaker.CircuitBreaker
}

type CircuitBreakerSettings struct {
	// ConsecutiveFailures trips the breaker
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before a trial request
	OpenTimeout time.Duration
	Logger      ports.Logger
}

func NewCircuitBreakerWeatherClient(client ports.WeatherClient, settings CircuitBreakerSettings) *CircuitBreakerWeatherClient {
	failures := settings.ConsecutiveFailures
	if failures == 0 {
		failures = 5
	}
	openTimeout := settings.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        client.GetProviderName(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isProviderOutage(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if settings.Logger != nil {
				settings.Logger.Warn("Weather provider circuit state changed",
					ports.F("provider", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return &CircuitBreakerWeatherClient{client: client, circuit: cb}
}

func (c *CircuitBreakerWeatherClient) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return c.execute(ctx, city, c.client.FetchCurrent)
}

func (c *CircuitBreakerWeatherClient) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return c.execute(ctx, city, c.client.FetchForecast)
}

func (c *CircuitBreakerWeatherClient) IsValidCity(ctx context.Context, city string) bool {
	return cityExists(ctx, c.FetchCurrent, city)
}

func (c *CircuitBreakerWeatherClient) GetProviderName() string {
	return c.client.GetProviderName()
}

// State reports the breaker state for health checks
func (c *CircuitBreakerWeatherClient) State() string {
	return c.circuit.State().String()
}

func (c *CircuitBreakerWeatherClient) execute(ctx context.Context, city string, fetch fetchFunc) (json.RawMessage, error) {
	result, err := c.circuit.Execute(func() (interface{}, error) {
		return fetch(ctx, city)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, errors.NewNetworkError("weather provider temporarily unavailable", err)
	}
	if err != nil {
		return nil, err
	}
	payload, _ := result.(json.RawMessage)
	return payload, nil
}

// isProviderOutage reports failures that say nothing about the request itself
func isProviderOutage(err error) bool {
	return errors.IsNetworkError(err) || errors.StatusCodeOf(err) >= http.StatusInternalServerError
}
