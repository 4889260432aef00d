package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/config"
)

const owmCurrent = `{"name": "London", "sys": {"country": "GB"}, "main": {"temp": 15.5, "humidity": 70},
	"weather": [{"main": "Clear", "description": "clear sky"}]}`

const owmForecast = `{"list": [
	{"dt_txt": "2024-01-01 00:00:00", "main": {"temp": 10}},
	{"dt_txt": "2024-01-01 03:00:00", "main": {"temp": 12}}
]}`

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("q")
		if city != "London" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
			return
		}
		switch {
		case strings.HasSuffix(r.URL.Path, "/weather"):
			_, _ = w.Write([]byte(owmCurrent))
		case strings.HasSuffix(r.URL.Path, "/forecast"):
			_, _ = w.Write([]byte(owmForecast))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			APIKey:          "test-key",
			BaseURL:         baseURL,
			TimeoutSeconds:  10,
			EnableCache:     true,
			CacheTTLMinutes: 5,
			EnableLogging:   true,
			LogFilePath:     filepath.Join(dir, "provider.log"),
			RateLimitBurst:  1,
		},
		Favorites: config.FavoritesConfig{
			Backend:  config.FavoritesBackendFile,
			FilePath: filepath.Join(dir, "favorites.json"),
			RedisKey: "weatherdash:favorites",
		},
		Database: config.DatabaseConfig{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(dir, "weatherdash.db"),
		},
		Cache: config.CacheConfig{Type: config.CacheTypeMemory},
		Log:   config.LogConfig{Format: "json", Level: "debug"},
		UI:    config.UIConfig{Theme: "dark", ForecastDays: 7},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) (*Application, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	deps, err := NewDependencyContainer(context.Background(), DependencyConfig{Config: cfg, LogOutput: &logs})
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	app, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return app, &logs
}

func serve(app *Application, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, req)
	return w
}

func TestApplication_WeatherAndFavorites_FileBackend(t *testing.T) {
	provider := newProviderServer(t)
	cfg := testConfig(t, provider.URL)
	app, logs := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/weather?city=London", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dashboard map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, "Loaded data for London, GB", dashboard["status"])
	assert.Equal(t, "Clear Sky", dashboard["description"])

	w = serve(app, http.MethodGet, "/api/weather?city=Atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(app, http.MethodPost, "/api/favorites", `{"city": "London"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	stored, err := os.ReadFile(cfg.Favorites.FilePath)
	require.NoError(t, err)
	assert.JSONEq(t, `["London"]`, string(stored))

	w = serve(app, http.MethodPost, "/api/favorites", `{"city": "Atlantis"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(app, http.MethodDelete, "/api/favorites/London", "")
	require.Equal(t, http.StatusOK, w.Code)
	stored, err = os.ReadFile(cfg.Favorites.FilePath)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(stored))

	providerLog, err := os.ReadFile(cfg.Weather.LogFilePath)
	require.NoError(t, err)
	assert.NotEmpty(t, providerLog)
	assert.Contains(t, logs.String(), "Ports initialized successfully")
}

func TestApplication_MissingAPIKey(t *testing.T) {
	provider := newProviderServer(t)
	cfg := testConfig(t, provider.URL)
	cfg.Weather.APIKey = ""
	app, _ := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/weather?city=London", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "API key missing")

	w = serve(app, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "degraded", health.Status)
}

func TestApplication_ReloadAPIKey(t *testing.T) {
	provider := newProviderServer(t)
	cfg := testConfig(t, provider.URL)
	cfg.Weather.APIKey = ""
	app, _ := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/weather?city=London", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	t.Setenv("OPENWEATHERMAP_API_KEY", "test-key")
	t.Setenv("OPENWEATHERMAP_API_BASE_URL", provider.URL)
	t.Setenv("WEATHER_TIMEOUT_SECONDS", "10")

	w = serve(app, http.MethodPost, "/api/settings/reload", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var settings struct {
		APIKeyConfigured bool `json:"api_key_configured"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &settings))
	assert.True(t, settings.APIKeyConfigured)
	assert.True(t, app.deps.WeatherProvider().HasAPIKey())

	w = serve(app, http.MethodGet, "/api/weather?city=London", "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestApplication_ReloadAPIKey_InvalidEnvironmentKeepsKey(t *testing.T) {
	provider := newProviderServer(t)
	app, _ := newTestApplication(t, testConfig(t, provider.URL))

	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	t.Setenv("WEATHER_TIMEOUT_SECONDS", "30")

	w := serve(app, http.MethodPost, "/api/settings/reload", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, app.deps.WeatherProvider().HasAPIKey())
}

func TestApplication_DatabaseBackend(t *testing.T) {
	provider := newProviderServer(t)
	cfg := testConfig(t, provider.URL)
	cfg.Favorites.Backend = config.FavoritesBackendDatabase
	app, _ := newTestApplication(t, cfg)

	w := serve(app, http.MethodPost, "/api/favorites", `{"city": "London"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	assert.Equal(t, []string{"London"}, app.GetFavoritesUseCase().List(context.Background()))

	w = serve(app, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database"`)
}

func TestApplication_RedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	provider := newProviderServer(t)

	cfg := testConfig(t, provider.URL)
	cfg.Favorites.Backend = config.FavoritesBackendRedis
	cfg.Cache = config.CacheConfig{
		Type: config.CacheTypeRedis,
		Redis: config.RedisConfig{
			Addr:         mr.Addr(),
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	}
	cfg.Log.Format = "zap"
	app, _ := newTestApplication(t, cfg)

	w := serve(app, http.MethodPost, "/api/favorites", `{"city": "London"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	stored, err := mr.List(cfg.Favorites.RedisKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"London"}, stored)

	w = serve(app, http.MethodGet, "/api/weather?city=London", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, mr.Keys())
}

func TestApplication_MetricsAndTheme(t *testing.T) {
	provider := newProviderServer(t)
	cfg := testConfig(t, provider.URL)
	cfg.UI.Theme = "light"
	app, _ := newTestApplication(t, cfg)

	w := serve(app, http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"light"`)

	serve(app, http.MethodGet, "/api/weather?city=London", "")

	w = serve(app, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weatherdash_weather_api_calls_total")
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestNewDependencyContainer_RequiresConfig(t *testing.T) {
	deps, err := NewDependencyContainer(context.Background(), DependencyConfig{})
	assert.Nil(t, deps)
	assert.Error(t, err)
}
