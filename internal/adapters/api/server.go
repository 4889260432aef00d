// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// HTTPServerAdapter exposes the dashboard over a JSON API using Gin
type HTTPServerAdapter struct {
	router           *gin.Engine
	weatherUseCase   WeatherUseCase
	favoritesUseCase FavoritesUseCase
	healthChecker    ports.SystemHealthChecker
	settings         SettingsReloader
	logger           ports.Logger
	theme            atomic.Pointer[theme.Theme]
}

// Use case interfaces that the HTTP adapter depends on
type WeatherUseCase interface {
	Search(ctx context.Context, request weather.SearchRequest) (*weather.Dashboard, error)
	ValidateCity(ctx context.Context, city string) bool
}

type FavoritesUseCase interface {
	List(ctx context.Context) []string
	Add(ctx context.Context, city string, validator ports.CityValidator) favorites.AddResult
	Remove(ctx context.Context, city string) bool
}

// SettingsReloader re-applies runtime settings and reports whether a
// provider API key is configured afterwards
type SettingsReloader interface {
	ReloadAPIKey(ctx context.Context) (bool, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	WeatherUseCase   WeatherUseCase
	FavoritesUseCase FavoritesUseCase
	HealthChecker    ports.SystemHealthChecker
	Logger           ports.Logger
	// Settings enables POST /api/settings/reload when set
	Settings SettingsReloader
	// Theme is the theme served until the first toggle; zero value means dark
	Theme theme.Theme
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(opts.Logger))

	server := &HTTPServerAdapter{
		router:           router,
		weatherUseCase:   opts.WeatherUseCase,
		favoritesUseCase: opts.FavoritesUseCase,
		healthChecker:    opts.HealthChecker,
		settings:         opts.Settings,
		logger:           opts.Logger,
	}

	initial := opts.Theme
	if initial.Name == "" {
		initial = theme.Dark
	}
	server.theme.Store(&initial)

	server.setupRoutes(opts.Gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.FavoritesUseCase == nil {
		return errors.NewValidationError("favorites use case is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather/raw", s.getRawWeather)

		api.GET("/favorites", s.listFavorites)
		api.POST("/favorites", s.addFavorite)
		api.DELETE("/favorites/:city", s.removeFavorite)

		api.GET("/theme", s.getTheme)
		api.POST("/theme/toggle", s.toggleTheme)

		api.GET("/health", s.getHealth)

		if s.settings != nil {
			api.POST("/settings/reload", s.reloadSettings)
		}
	}

	if gatherer == nil {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		return
	}
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// CurrentTheme returns the theme currently served
func (s *HTTPServerAdapter) CurrentTheme() theme.Theme {
	return *s.theme.Load()
}
