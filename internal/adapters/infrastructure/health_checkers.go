package infrastructure

import (
	"context"
	"sort"

	"gorm.io/gorm"
	"weatherdash.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// DatabaseHealthChecker implements database health checking
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = statusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	return status
}

// WeatherAPIHealthChecker reports whether the provider can be called at all.
// It never makes a request: a missing key is the only thing it can see.
type WeatherAPIHealthChecker struct {
	provider      string
	keyConfigured func() bool
}

func NewWeatherAPIHealthChecker(provider string, keyConfigured func() bool) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{provider: provider, keyConfigured: keyConfigured}
}

func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	configured := w.keyConfigured != nil && w.keyConfigured()

	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"provider":           w.provider,
			"api_key_configured": configured,
		},
	}
	if !configured {
		status.Status = statusDegraded
		status.Error = "API key missing"
	}
	return status
}

// FavoritesPinger is the slice of the favorites use case the health check needs
type FavoritesPinger interface {
	Ping(ctx context.Context) error
	StorageName() string
}

// FavoritesHealthChecker verifies the favorites backend can be read
type FavoritesHealthChecker struct {
	favorites FavoritesPinger
}

func NewFavoritesHealthChecker(favorites FavoritesPinger) *FavoritesHealthChecker {
	return &FavoritesHealthChecker{favorites: favorites}
}

func (f *FavoritesHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "favorites",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"storage": f.favorites.StorageName(),
		},
	}
	if err := f.favorites.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// SystemHealthChecker aggregates named component checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	filtered := make(map[string]ports.HealthChecker, len(checkers))
	for name, checker := range checkers {
		if checker != nil {
			filtered[name] = checker
		}
	}
	return &SystemHealthChecker{checkers: filtered}
}

func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}

// Names returns the registered component names in sorted order
func (s *SystemHealthChecker) Names() []string {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OverallStatus reduces component results to the worst status seen
func OverallStatus(results map[string]ports.HealthStatus) string {
	overall := statusHealthy
	for _, result := range results {
		switch result.Status {
		case statusUnhealthy:
			return statusUnhealthy
		case statusDegraded:
			overall = statusDegraded
		}
	}
	return overall
}
