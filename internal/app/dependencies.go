package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/database"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/adapters/storage"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

const (
	breakerConsecutiveFailures = 5
	breakerOpenTimeout         = 30 * time.Second
)

// DependencyContainer builds and owns every adapter the application runs on
type DependencyContainer struct {
	config   *config.Config
	output   io.Writer
	registry *prometheus.Registry

	db            *gorm.DB
	redis         *redis.Client
	weatherClient *external.OpenWeatherMapClient
	ports         *ports.ApplicationPorts

	closers []func() error
}

type DependencyConfig struct {
	Config *config.Config
	// LogOutput receives application logs; nil means stdout
	LogOutput io.Writer
	// HTTPClient overrides the client used to reach the weather provider
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(ctx context.Context, depConfig DependencyConfig) (*DependencyContainer, error) {
	if depConfig.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	output := depConfig.LogOutput
	if output == nil {
		output = os.Stdout
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	container := &DependencyContainer{
		config:   depConfig.Config,
		output:   output,
		registry: registry,
	}

	if err := container.initializePorts(ctx, depConfig.HTTPClient); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context, httpClient external.HTTPClient) error {
	appLogger := c.newLogger()
	appLogger.Info("Initializing ports...")

	metrics := infrastructure.NewPrometheusMetricsCollector(c.registry)

	if c.needsRedis() {
		client, err := external.NewRedisClient(ctx, &c.config.Cache.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		c.redis = client
		c.closers = append(c.closers, client.Close)
	}

	cacheBackend, err := external.NewCacheProviderFactory(c.redis).CreateCacheProvider(ctx, &c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	appLogger.Info("Cache provider initialized", ports.F("type", c.config.Cache.Type.String()))

	weatherClient := c.buildWeatherClient(httpClient, cacheBackend, metrics, appLogger, c.providerLogger(appLogger))

	favoritesStorage, err := c.buildFavoritesStorage(appLogger)
	if err != nil {
		return err
	}
	appLogger.Info("Favorites storage initialized", ports.F("backend", favoritesStorage.GetStorageName()))

	c.ports = &ports.ApplicationPorts{
		WeatherClient:    weatherClient,
		FavoritesStorage: favoritesStorage,
		CacheMetrics:     cacheBackend,
		ConfigProvider:   infrastructure.NewConfigProviderAdapter(c.config),
		Logger:           appLogger,
		Metrics:          metrics,
	}

	appLogger.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) newLogger() ports.Logger {
	if strings.EqualFold(c.config.Log.Format, "zap") {
		zapLogger := infrastructure.NewZapLoggerAdapter(c.output, c.config.Log.Level)
		c.closers = append(c.closers, func() error {
			_ = zapLogger.Sync()
			return nil
		})
		return zapLogger
	}
	base := logger.NewWithOptions(c.output, c.config.Log.Format, logger.ParseLevel(c.config.Log.Level))
	return infrastructure.NewSlogLoggerAdapter(base)
}

// providerLogger adds the JSON file sink for provider calls when one is configured
func (c *DependencyContainer) providerLogger(appLogger ports.Logger) ports.Logger {
	path := c.config.Weather.LogFilePath
	if !c.config.Weather.EnableLogging || path == "" {
		return appLogger
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(path)
	if err != nil {
		appLogger.Warn("Failed to create file logger, using application logger", ports.F("path", path), ports.F("error", err))
		return appLogger
	}
	c.closers = append(c.closers, fileLogger.Close)
	appLogger.Info("File logging enabled", ports.F("path", path))
	return infrastructure.TeeLogger{appLogger, fileLogger}
}

// buildWeatherClient stacks the decorators around the provider client. Cache
// hits never reach the instrumented layer, so call metrics count real requests.
func (c *DependencyContainer) buildWeatherClient(
	httpClient external.HTTPClient,
	cache external.CacheBackend,
	metrics ports.MetricsCollector,
	appLogger, providerLogger ports.Logger,
) ports.WeatherClient {
	weatherCfg := c.config.Weather

	c.weatherClient = external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
		APIKey:     weatherCfg.APIKey,
		BaseURL:    weatherCfg.BaseURL,
		Timeout:    weatherCfg.Timeout(),
		HTTPClient: httpClient,
		Logger:     appLogger,
	})
	if !c.weatherClient.HasAPIKey() {
		appLogger.Warn("OPENWEATHERMAP_API_KEY is not set; weather requests will fail until it is configured")
	}

	var client ports.WeatherClient = c.weatherClient

	if weatherCfg.RateLimitPerSecond > 0 {
		client = external.NewRateLimitedWeatherClient(client, weatherCfg.RateLimitPerSecond, weatherCfg.RateLimitBurst)
		appLogger.Info("Weather rate limit enabled", ports.F("rps", weatherCfg.RateLimitPerSecond))
	}

	if weatherCfg.EnableCircuitBreaker {
		client = external.NewCircuitBreakerWeatherClient(client, external.CircuitBreakerSettings{
			ConsecutiveFailures: breakerConsecutiveFailures,
			OpenTimeout:         breakerOpenTimeout,
			Logger:              appLogger,
		})
	}

	client = external.NewInstrumentedWeatherClient(client, metrics)

	if weatherCfg.EnableCache {
		client = external.NewCachedWeatherClient(external.CachedWeatherClientParams{
			Client:  client,
			Cache:   cache,
			TTL:     weatherCfg.CacheTTL(),
			Metrics: metrics,
			Logger:  appLogger,
		})
	}

	if weatherCfg.EnableLogging {
		client = external.NewWeatherClientLoggingDecorator(client, providerLogger)
	}

	return client
}

func (c *DependencyContainer) buildFavoritesStorage(appLogger ports.Logger) (ports.FavoritesStorage, error) {
	favCfg := c.config.Favorites

	switch favCfg.Backend {
	case config.FavoritesBackendFile:
		return storage.NewFileFavoritesStorage(favCfg.FilePath, appLogger), nil
	case config.FavoritesBackendDatabase:
		db, err := database.Open(c.config.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		c.db = db
		c.closers = append(c.closers, func() error { return database.Close(db) })

		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		return database.NewFavoritesRepositoryAdapter(db), nil
	case config.FavoritesBackendRedis:
		return storage.NewRedisFavoritesStorage(c.redis, favCfg.RedisKey), nil
	default:
		return nil, fmt.Errorf("unsupported favorites backend: %s", favCfg.Backend.String())
	}
}

func (c *DependencyContainer) needsRedis() bool {
	return c.config.Cache.Type == config.CacheTypeRedis ||
		c.config.Favorites.Backend == config.FavoritesBackendRedis
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// WeatherProvider exposes the undecorated provider client for key management
func (c *DependencyContainer) WeatherProvider() *external.OpenWeatherMapClient {
	return c.weatherClient
}

func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup releases resources in reverse order of acquisition
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
