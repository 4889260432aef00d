package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

const londonCurrent = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 15.5, "feels_like": 14.2, "humidity": 72, "pressure": 1012},
	"wind": {"speed": 4.6},
	"visibility": 10000,
	"weather": [{"main": "Clouds", "description": "broken clouds"}]
}`

const londonForecast = `{"list": [
	{"dt_txt": "2024-01-01 00:00:00", "main": {"temp": 10.04}},
	{"dt_txt": "2024-01-01 03:00:00", "main": {"temp": 12.06}},
	{"dt_txt": "2024-01-02 00:00:00", "main": {"temp": 8}}
]}`

func TestWeatherHandler_GetWeather_Success(t *testing.T) {
	ts := setupTestServer(t, nil, nil)
	ts.client.EXPECT().FetchCurrent(mock.Anything, "London").Return(json.RawMessage(londonCurrent), nil)
	ts.client.EXPECT().FetchForecast(mock.Anything, "London").Return(json.RawMessage(londonForecast), nil)

	w := ts.do(http.MethodGet, "/api/weather?city=London", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response WeatherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "London", response.City)
	assert.Equal(t, "London, GB", response.Location)
	assert.Equal(t, 15.5, response.Temperature)
	assert.Equal(t, "10000 m", response.Visibility)
	assert.Equal(t, "clouds", response.Category)
	assert.Equal(t, "Broken Clouds", response.Description)
	assert.Equal(t, "☁️", response.Icon)
	assert.Equal(t, "Loaded data for London, GB", response.Status)
	assert.True(t, response.ForecastAvailable)

	require.Len(t, response.Forecast, 2)
	assert.Equal(t, ForecastDayResponse{Date: "2024-01-01", Label: "Mon 01", Min: 10, Max: 12.1}, response.Forecast[0])
	assert.Equal(t, ForecastDayResponse{Date: "2024-01-02", Label: "Tue 02", Min: 8, Max: 8}, response.Forecast[1])
}

func TestWeatherHandler_GetWeather_MissingCity(t *testing.T) {
	ts := setupTestServer(t, nil, nil)

	for _, path := range []string{"/api/weather", "/api/weather?city=", "/api/weather?city=%20%20"} {
		w := ts.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)

		var response ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Input required", response.Status)
		assert.Equal(t, "Input Required", response.Title)
	}
}

func TestWeatherHandler_GetWeather_ProviderErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedStatus string
	}{
		{
			name:           "unknown city",
			err:            errors.NewHTTPError(http.StatusNotFound, "city not found"),
			expectedCode:   http.StatusNotFound,
			expectedStatus: "Error",
		},
		{
			name:           "rejected key",
			err:            errors.NewHTTPError(http.StatusUnauthorized, "Invalid API key"),
			expectedCode:   http.StatusBadGateway,
			expectedStatus: "Error",
		},
		{
			name:           "missing key",
			err:            errors.NewConfigurationError("API key not set", nil),
			expectedCode:   http.StatusServiceUnavailable,
			expectedStatus: "API key missing",
		},
		{
			name:           "unreachable",
			err:            errors.NewNetworkError("dial tcp: timeout", nil),
			expectedCode:   http.StatusGatewayTimeout,
			expectedStatus: "Network error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupTestServer(t, nil, nil)
			ts.client.EXPECT().FetchCurrent(mock.Anything, "Atlantis").Return(nil, tt.err)

			w := ts.do(http.MethodGet, "/api/weather?city=Atlantis", "")
			assert.Equal(t, tt.expectedCode, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedStatus, response.Status)
			assert.NotEmpty(t, response.Error)
		})
	}
}

func TestWeatherHandler_GetRawWeather(t *testing.T) {
	ts := setupTestServer(t, nil, nil)
	ts.client.EXPECT().FetchCurrent(mock.Anything, "London").Return(json.RawMessage(londonCurrent), nil)
	ts.client.EXPECT().FetchForecast(mock.Anything, "London").Return(json.RawMessage(londonForecast), nil)

	w := ts.do(http.MethodGet, "/api/weather/raw?city=London", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.JSONEq(t, londonCurrent, string(response["current"]))
	assert.JSONEq(t, londonForecast, string(response["forecast_sample"]))
}

func TestWeatherHandler_GetRawWeather_NoForecast(t *testing.T) {
	ts := setupTestServer(t, nil, nil)
	ts.client.EXPECT().FetchCurrent(mock.Anything, "London").Return(json.RawMessage(londonCurrent), nil)
	ts.client.EXPECT().FetchForecast(mock.Anything, "London").Return(json.RawMessage(`[1, 2]`), nil)

	w := ts.do(http.MethodGet, "/api/weather/raw?city=London", "")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "null", string(response["forecast_sample"]))
}
