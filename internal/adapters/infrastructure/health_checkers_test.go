package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/storage"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type stubFavorites struct {
	err error
}

func (s stubFavorites) Ping(context.Context) error { return s.err }
func (s stubFavorites) StorageName() string        { return "file" }

func TestDatabaseHealthChecker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	status := NewDatabaseHealthChecker(db).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, true, status.Details["connected"])

	status = NewDatabaseHealthChecker(nil).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
}

func TestWeatherAPIHealthChecker(t *testing.T) {
	status := NewWeatherAPIHealthChecker("openweathermap", func() bool { return true }).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, true, status.Details["api_key_configured"])

	status = NewWeatherAPIHealthChecker("openweathermap", func() bool { return false }).Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "API key missing", status.Error)
}

func TestFavoritesHealthChecker(t *testing.T) {
	status := NewFavoritesHealthChecker(stubFavorites{}).Check(context.Background())
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "file", status.Details["storage"])

	status = NewFavoritesHealthChecker(stubFavorites{err: errors.NewDatabaseError("gone", nil)}).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.Contains(t, status.Error, "gone")
}

func TestFavoritesHealthChecker_UnreadableFile(t *testing.T) {
	logger := mocks.AllowAnyLogs(mocks.NewLogger(t))
	uc, err := favorites.NewUseCase(favorites.UseCaseDependencies{
		Storage: storage.NewFileFavoritesStorage(t.TempDir(), logger),
		Logger:  logger,
	})
	require.NoError(t, err)

	status := NewFavoritesHealthChecker(uc).Check(context.Background())
	assert.Equal(t, "unhealthy", status.Status)
	assert.Contains(t, status.Error, "failed to read favorites file")
	assert.Equal(t, "file", status.Details["storage"])
}

func TestSystemHealthChecker(t *testing.T) {
	system := NewSystemHealthChecker(map[string]ports.HealthChecker{
		"weatherAPI": NewWeatherAPIHealthChecker("openweathermap", func() bool { return false }),
		"favorites":  NewFavoritesHealthChecker(stubFavorites{}),
		"database":   nil,
	})

	assert.Equal(t, []string{"favorites", "weatherAPI"}, system.Names())

	results := system.CheckAll(context.Background())
	require.Len(t, results, 2)
	assert.Equal(t, "degraded", OverallStatus(results))
}

func TestOverallStatus(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]ports.HealthStatus
		want    string
	}{
		{name: "empty", results: nil, want: "healthy"},
		{name: "all healthy", results: map[string]ports.HealthStatus{"a": {Status: "healthy"}}, want: "healthy"},
		{name: "degraded wins over healthy", results: map[string]ports.HealthStatus{"a": {Status: "healthy"}, "b": {Status: "degraded"}}, want: "degraded"},
		{name: "unhealthy wins", results: map[string]ports.HealthStatus{"a": {Status: "degraded"}, "b": {Status: "unhealthy"}}, want: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallStatus(tt.results))
		})
	}
}
