package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// DefaultForecastDays is the display window used when none is configured
const DefaultForecastDays = 7

type UseCase struct {
	client       ports.WeatherClient
	logger       ports.Logger
	forecastDays int
	now          func() time.Time
}

type UseCaseDependencies struct {
	WeatherClient ports.WeatherClient
	Logger        ports.Logger
	ForecastDays  int
	Clock         func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherClient == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	forecastDays := deps.ForecastDays
	if forecastDays <= 0 {
		forecastDays = DefaultForecastDays
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		client:       deps.WeatherClient,
		logger:       deps.Logger,
		forecastDays: forecastDays,
		now:          clock,
	}, nil
}

// Search fetches current conditions and the forecast for a city and returns
// the normalized dashboard. Each call is a fresh fetch; the previous
// dashboard is never patched.
func (uc *UseCase) Search(ctx context.Context, request SearchRequest) (*Dashboard, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid search request: " + err.Error())
	}

	request.NormalizeCity()
	city := request.City
	uc.logger.Debug("Fetching weather dashboard", ports.F("city", city))

	current, err := uc.client.FetchCurrent(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to fetch current weather", ports.F("city", city), ports.F("error", err))
		return nil, fmt.Errorf("fetch current weather for %s: %w", city, err)
	}

	forecast, err := uc.client.FetchForecast(ctx, city)
	if err != nil {
		uc.logger.Error("Failed to fetch forecast", ports.F("city", city), ports.F("error", err))
		return nil, fmt.Errorf("fetch forecast for %s: %w", city, err)
	}

	return uc.buildDashboard(current, forecast)
}

func (uc *UseCase) buildDashboard(current, forecast json.RawMessage) (*Dashboard, error) {
	snapshot, err := FromPayloads(current, forecast, uc.now())
	if err != nil {
		return nil, err
	}

	days := TruncateDays(AggregateForecastPayload(snapshot.Forecast), uc.forecastDays)

	uc.logger.Debug("Weather dashboard built",
		ports.F("city", snapshot.City),
		ports.F("temperature", snapshot.Temperature),
		ports.F("forecast_days", len(days)))

	return &Dashboard{
		Snapshot:          snapshot,
		Days:              days,
		ForecastAvailable: len(days) > 0,
		Status:            fmt.Sprintf("Loaded data for %s, %s", snapshot.City, snapshot.Country),
	}, nil
}

// ValidateCity is the best-effort check used when adding favorites
func (uc *UseCase) ValidateCity(ctx context.Context, city string) bool {
	return uc.client.IsValidCity(ctx, city)
}

// ForecastDays returns the configured display window
func (uc *UseCase) ForecastDays() int {
	return uc.forecastDays
}
