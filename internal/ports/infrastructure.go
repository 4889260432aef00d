package ports

import (
	"context"
	"time"
)

// WeatherConfig represents weather client configuration
type WeatherConfig struct {
	APIKeyConfigured bool
	BaseURL          string
	Timeout          time.Duration
	EnableCache      bool
	CacheTTL         time.Duration
}

// FavoritesConfig represents favorites persistence configuration
type FavoritesConfig struct {
	Backend  string
	FilePath string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type  string
	Redis RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
}

// UIConfig represents presentation defaults
type UIConfig struct {
	Theme        string
	ForecastDays int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetFavoritesConfig() FavoritesConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetUIConfig() UIConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordWeatherAPICall(ctx context.Context, endpoint string, outcome string, duration time.Duration)
	RecordCacheHit(ctx context.Context)
	RecordCacheMiss(ctx context.Context)
	RecordFavoritesMutation(ctx context.Context, action string, result string)
}
