package weather

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"weatherdash.app/pkg/errors"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantTitle  string
		wantStatus string
		contains   string
	}{
		{
			name:       "validation",
			err:        errors.NewValidationError("city cannot be empty"),
			wantTitle:  "Input Required",
			wantStatus: StatusInputRequired,
			contains:   "enter a city name",
		},
		{
			name:       "missing api key",
			err:        errors.NewConfigurationError("OpenWeatherMap API key is not configured", nil),
			wantTitle:  "API Key",
			wantStatus: StatusAPIKeyMissing,
			contains:   "OPENWEATHERMAP_API_KEY",
		},
		{
			name:       "network",
			err:        fmt.Errorf("fetch current weather for Paris: %w", errors.NewNetworkError("dial tcp", nil)),
			wantTitle:  "Network",
			wantStatus: StatusNetworkError,
			contains:   "Network error",
		},
		{
			name:       "city not found",
			err:        errors.NewHTTPError(404, "city not found"),
			wantTitle:  "API Error",
			wantStatus: StatusError,
			contains:   "Failed to get data",
		},
		{
			name:       "bad key",
			err:        errors.NewHTTPError(401, "invalid API key"),
			wantTitle:  "API Error",
			wantStatus: StatusError,
			contains:   "Failed to get data",
		},
		{
			name:       "server error",
			err:        errors.NewHTTPError(503, "service unavailable"),
			wantTitle:  "API Error",
			wantStatus: StatusError,
			contains:   "Failed to get data",
		},
		{
			name:       "malformed",
			err:        errors.NewMalformedResponseError("response body is not valid JSON", nil),
			wantTitle:  "Error",
			wantStatus: StatusError,
			contains:   "Unexpected error",
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("boom"),
			wantTitle:  "Error",
			wantStatus: StatusError,
			contains:   "Unexpected error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Describe(tt.err)
			assert.Equal(t, tt.wantTitle, msg.Title)
			assert.Equal(t, tt.wantStatus, msg.Status)
			assert.Contains(t, msg.Message, tt.contains)
		})
	}
}

func TestDescribe_Nil(t *testing.T) {
	assert.Equal(t, UserMessage{}, Describe(nil))
}
