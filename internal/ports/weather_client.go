package ports

import (
	"context"
	"encoding/json"
)

// WeatherClient defines the contract for the weather provider's current and forecast resources.
// Payloads are returned verbatim so the caller can both normalize and export them.
type WeatherClient interface {
	FetchCurrent(ctx context.Context, city string) (json.RawMessage, error)
	FetchForecast(ctx context.Context, city string) (json.RawMessage, error)
	IsValidCity(ctx context.Context, city string) bool
	GetProviderName() string
}

// CityValidator reports whether a city is known to the provider
type CityValidator func(ctx context.Context, city string) bool
