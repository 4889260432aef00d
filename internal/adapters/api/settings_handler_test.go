package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/pkg/errors"
)

type stubReloader struct {
	configured bool
	err        error
	calls      int
}

func (s *stubReloader) ReloadAPIKey(context.Context) (bool, error) {
	s.calls++
	return s.configured, s.err
}

func newSettingsRouter(t *testing.T, settings SettingsReloader) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server, err := NewHTTPServerAdapter(ServerOptions{
		WeatherUseCase:   &weather.UseCase{},
		FavoritesUseCase: &favorites.UseCase{},
		HealthChecker:    staticHealth{},
		Logger:           mocks.AllowAnyLogs(mocks.NewLogger(t)),
		Settings:         settings,
	})
	require.NoError(t, err)
	return &testServer{server: server, router: server.GetRouter()}
}

func TestSettingsHandler_Reload(t *testing.T) {
	tests := []struct {
		name         string
		reloader     *stubReloader
		expectedCode int
		configured   bool
	}{
		{
			name:         "KeyConfigured",
			reloader:     &stubReloader{configured: true},
			expectedCode: http.StatusOK,
			configured:   true,
		},
		{
			name:         "KeyStillMissing",
			reloader:     &stubReloader{},
			expectedCode: http.StatusOK,
		},
		{
			name:         "InvalidEnvironment",
			reloader:     &stubReloader{err: errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 8 and 10", nil)},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newSettingsRouter(t, tt.reloader)

			w := ts.do(http.MethodPost, "/api/settings/reload", "")
			require.Equal(t, tt.expectedCode, w.Code, w.Body.String())
			assert.Equal(t, 1, tt.reloader.calls)

			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp SettingsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.configured, resp.APIKeyConfigured)
		})
	}
}

func TestSettingsHandler_NotRegisteredWithoutReloader(t *testing.T) {
	ts := newSettingsRouter(t, nil)

	w := ts.do(http.MethodPost, "/api/settings/reload", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
