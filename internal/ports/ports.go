package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient WeatherClient

	// Favorites
	FavoritesStorage FavoritesStorage

	// Cache
	CacheMetrics CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
