package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates a weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) *WeatherClientLoggingDecorator {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

func (d *WeatherClientLoggingDecorator) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return d.logged(ctx, endpointCurrent, city, d.client.FetchCurrent)
}

func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return d.logged(ctx, endpointForecast, city, d.client.FetchForecast)
}

func (d *WeatherClientLoggingDecorator) IsValidCity(ctx context.Context, city string) bool {
	valid := d.client.IsValidCity(ctx, city)
	d.logger.Info("City validation completed",
		ports.F("provider", d.client.GetProviderName()),
		ports.F("city", city),
		ports.F("valid", valid))
	return valid
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *WeatherClientLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}

func (d *WeatherClientLoggingDecorator) logged(ctx context.Context, endpoint, city string, fetch fetchFunc) (json.RawMessage, error) {
	providerName := d.client.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "request"))

	startTime := time.Now()
	payload, err := fetch(ctx, city)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("endpoint", endpoint),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", endpoint),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(payload)))

	return payload, nil
}

type fetchFunc func(ctx context.Context, city string) (json.RawMessage, error)

// cityExists treats any successful current-conditions fetch as proof the city exists
func cityExists(ctx context.Context, fetch fetchFunc, city string) bool {
	_, err := fetch(ctx, city)
	return err == nil
}
