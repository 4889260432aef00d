package external

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// InstrumentedWeatherClient records the outcome and latency of every provider call
type InstrumentedWeatherClient struct {
	client  ports.WeatherClient
	metrics ports.MetricsCollector
}

func NewInstrumentedWeatherClient(client ports.WeatherClient, metrics ports.MetricsCollector) *InstrumentedWeatherClient {
	return &InstrumentedWeatherClient{client: client, metrics: metrics}
}

func (m *InstrumentedWeatherClient) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return m.observe(ctx, endpointCurrent, city, m.client.FetchCurrent)
}

func (m *InstrumentedWeatherClient) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return m.observe(ctx, endpointForecast, city, m.client.FetchForecast)
}

func (m *InstrumentedWeatherClient) IsValidCity(ctx context.Context, city string) bool {
	return cityExists(ctx, m.FetchCurrent, city)
}

func (m *InstrumentedWeatherClient) GetProviderName() string {
	return m.client.GetProviderName()
}

func (m *InstrumentedWeatherClient) observe(ctx context.Context, endpoint, city string, fetch fetchFunc) (json.RawMessage, error) {
	start := time.Now()
	payload, err := fetch(ctx, city)
	m.metrics.RecordWeatherAPICall(ctx, endpoint, outcomeOf(err), time.Since(start))
	return payload, err
}

// outcomeOf labels a call result, e.g. "success" or "network_error"
func outcomeOf(err error) string {
	if err == nil {
		return "success"
	}
	return strings.ToLower(errors.TypeOf(err).String())
}
