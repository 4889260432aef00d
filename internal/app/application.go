package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase   *weather.UseCase
	favoritesUseCase *favorites.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps   *DependencyContainer
	ports  *ports.ApplicationPorts
	logger ports.Logger
}

func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(ctx, DependencyConfig{Config: cfg})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
		logger: deps.ApplicationPorts().Logger,
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	a.logger.Info("Initializing use cases...")

	uiConfig := a.ports.ConfigProvider.GetUIConfig()

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherClient: a.ports.WeatherClient,
		Logger:        a.ports.Logger,
		ForecastDays:  uiConfig.ForecastDays,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	favoritesUseCase, err := favorites.NewUseCase(favorites.UseCaseDependencies{
		Storage: a.ports.FavoritesStorage,
		Logger:  a.ports.Logger,
		Metrics: a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create favorites use case: %w", err)
	}
	a.favoritesUseCase = favoritesUseCase

	a.logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	initialTheme, err := theme.ByName(a.ports.ConfigProvider.GetUIConfig().Theme)
	if err != nil {
		return fmt.Errorf("resolve theme: %w", err)
	}

	provider := a.deps.WeatherProvider()
	checkers := map[string]ports.HealthChecker{
		"weatherAPI": infrastructure.NewWeatherAPIHealthChecker(provider.GetProviderName(), provider.HasAPIKey),
		"favorites":  infrastructure.NewFavoritesHealthChecker(a.favoritesUseCase),
	}
	if db := a.deps.Database(); db != nil {
		checkers["database"] = infrastructure.NewDatabaseHealthChecker(db)
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		WeatherUseCase:   a.weatherUseCase,
		FavoritesUseCase: a.favoritesUseCase,
		HealthChecker:    infrastructure.NewSystemHealthChecker(checkers),
		Logger:           a.logger,
		Settings:         newAPIKeyReloader(provider, a.logger),
		Theme:            initialTheme,
		Gatherer:         a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.ports.ConfigProvider.GetServerConfig().Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting HTTP server", ports.F("addr", a.httpServer.Addr))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if a.ports.CacheMetrics != nil {
		stats := a.ports.CacheMetrics.GetStats()
		a.logger.Info("Weather cache statistics",
			ports.F("hits", stats.Hits),
			ports.F("misses", stats.Misses),
			ports.F("hit_ratio", stats.HitRatio))
	}

	if err := a.deps.Cleanup(); err != nil {
		a.logger.Warn("Error releasing resources", ports.F("error", err))
	}

	a.logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// GetFavoritesUseCase returns the favorites use case for testing
func (a *Application) GetFavoritesUseCase() *favorites.UseCase {
	return a.favoritesUseCase
}
