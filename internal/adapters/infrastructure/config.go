package infrastructure

import (
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		APIKeyConfigured: c.config.Weather.HasAPIKey(),
		BaseURL:          c.config.Weather.BaseURL,
		Timeout:          c.config.Weather.Timeout(),
		EnableCache:      c.config.Weather.EnableCache,
		CacheTTL:         c.config.Weather.CacheTTL(),
	}
}

func (c *ConfigProviderAdapter) GetFavoritesConfig() ports.FavoritesConfig {
	return ports.FavoritesConfig{
		Backend:  c.config.Favorites.Backend.String(),
		FilePath: c.config.Favorites.FilePath,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
		},
	}
}

func (c *ConfigProviderAdapter) GetUIConfig() ports.UIConfig {
	return ports.UIConfig{
		Theme:        c.config.UI.Theme,
		ForecastDays: c.config.UI.ForecastDays,
	}
}
