// Package external provides adapters for the weather provider and the
// cache backends that sit in front of it.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	DefaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultRequestTimeout        = 10 * time.Second

	endpointCurrent  = "weather"
	endpointForecast = "forecast"

	// maxResponseBytes bounds how much of a provider body is read
	maxResponseBytes = 4 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClient implements the WeatherClient port against the
// OpenWeatherMap 2.5 REST API. Requests are sent once with a fixed timeout.
type OpenWeatherMapClient struct {
	mu      sync.RWMutex
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     ports.Logger
}

func NewOpenWeatherMapClient(params OpenWeatherMapClientParams) *OpenWeatherMapClient {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenWeatherMapBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultRequestTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapClient{
		apiKey:  strings.TrimSpace(params.APIKey),
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// SetAPIKey replaces the key used for subsequent requests
func (c *OpenWeatherMapClient) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

// HasAPIKey reports whether a key is configured
func (c *OpenWeatherMapClient) HasAPIKey() bool {
	return c.key() != ""
}

func (c *OpenWeatherMapClient) key() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// FetchCurrent returns the raw current-conditions body for a city
func (c *OpenWeatherMapClient) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return c.get(ctx, endpointCurrent, city)
}

// FetchForecast returns the raw 3-hour forecast body for a city
func (c *OpenWeatherMapClient) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return c.get(ctx, endpointForecast, city)
}

// IsValidCity queries the current-conditions endpoint. Any failure counts as invalid.
func (c *OpenWeatherMapClient) IsValidCity(ctx context.Context, city string) bool {
	_, err := c.FetchCurrent(ctx, city)
	if err != nil {
		c.logger.Debug("City validation failed", ports.F("city", city), ports.F("error", err))
		return false
	}
	return true
}

// GetProviderName returns the name of this weather provider
func (c *OpenWeatherMapClient) GetProviderName() string {
	return "openweathermap"
}

func (c *OpenWeatherMapClient) get(ctx context.Context, endpoint, city string) (json.RawMessage, error) {
	apiKey := c.key()
	if apiKey == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is not configured", nil)
	}
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", apiKey)
	query.Set("units", "metric")
	endpointURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid OpenWeatherMap base URL", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Sprintf("request to OpenWeatherMap %s failed", endpoint), err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.NewNetworkError("failed to read OpenWeatherMap response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewHTTPError(resp.StatusCode, providerMessage(resp.StatusCode, body))
	}

	if !isJSONObject(body) {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("OpenWeatherMap %s response is not a JSON object", endpoint), nil)
	}

	return json.RawMessage(body), nil
}

// providerMessage extracts the "message" field of an error body, falling back to the status text
func providerMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Sprintf("OpenWeatherMap returned status %d: %s", status, payload.Message)
	}
	return fmt.Sprintf("OpenWeatherMap returned status %d: %s", status, http.StatusText(status))
}

func isJSONObject(body []byte) bool {
	var object map[string]json.RawMessage
	return json.Unmarshal(body, &object) == nil && object != nil
}
