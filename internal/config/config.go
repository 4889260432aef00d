package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB            = 15
	maxCacheTTLMinutes    = 1440
	maxPortNumber         = 65535
	minTimeoutSeconds     = 8
	maxTimeoutSeconds     = 10
	minForecastDays       = 1
	maxForecastDays       = 7
	maxRateLimitPerSecond = 100
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Favorites FavoritesConfig `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Log       LogConfig       `split_words:"true"`
	UI        UIConfig        `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig configures the OpenWeatherMap client. An empty APIKey is a
// valid state: requests then fail with a configuration error instead of the
// process refusing to start.
type WeatherConfig struct {
	APIKey               string  `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL              string  `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	TimeoutSeconds       int     `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	EnableCache          bool    `envconfig:"WEATHER_ENABLE_CACHE" default:"false"`
	CacheTTLMinutes      int     `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"5"`
	EnableLogging        bool    `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath          string  `envconfig:"WEATHER_LOG_FILE_PATH"`
	RateLimitPerSecond   float64 `envconfig:"WEATHER_RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst       int     `envconfig:"WEATHER_RATE_LIMIT_BURST" default:"1"`
	EnableCircuitBreaker bool    `envconfig:"WEATHER_CIRCUIT_BREAKER" default:"false"`
}

// Timeout returns the fixed request timeout
func (w WeatherConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// CacheTTL returns the cache lifetime of a fetched payload
func (w WeatherConfig) CacheTTL() time.Duration {
	return time.Duration(w.CacheTTLMinutes) * time.Minute
}

// FavoritesBackend selects where the favorites list is persisted
type FavoritesBackend int

const (
	FavoritesBackendUnknown FavoritesBackend = iota
	FavoritesBackendFile
	FavoritesBackendDatabase
	FavoritesBackendRedis
)

// String returns the string representation of the favorites backend
func (b FavoritesBackend) String() string {
	switch b {
	case FavoritesBackendFile:
		return "file"
	case FavoritesBackendDatabase:
		return "database"
	case FavoritesBackendRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// FavoritesBackendFromString converts string to FavoritesBackend enum
func FavoritesBackendFromString(s string) FavoritesBackend {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return FavoritesBackendFile
	case "database", "db":
		return FavoritesBackendDatabase
	case "redis":
		return FavoritesBackendRedis
	default:
		return FavoritesBackendUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (b *FavoritesBackend) UnmarshalText(text []byte) error {
	*b = FavoritesBackendFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (b FavoritesBackend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

type FavoritesConfig struct {
	Backend  FavoritesBackend `envconfig:"FAVORITES_BACKEND" default:"file"`
	FilePath string           `envconfig:"FAVORITES_FILE_PATH" default:"favorites.json"`
	RedisKey string           `envconfig:"FAVORITES_REDIS_KEY" default:"weatherdash:favorites"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherdash.db"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LogConfig struct {
	Format string `envconfig:"LOG_FORMAT" default:"text"`
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
}

type UIConfig struct {
	Theme        string `envconfig:"UI_THEME" default:"dark"`
	ForecastDays int    `envconfig:"UI_FORECAST_DAYS" default:"7"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadWeatherConfig re-reads only the weather section from the environment
func LoadWeatherConfig() (WeatherConfig, error) {
	var weather WeatherConfig
	if err := envconfig.Process("", &weather); err != nil {
		return WeatherConfig{}, errors.NewConfigurationError("error processing weather config", err)
	}
	if err := weather.Validate(); err != nil {
		return WeatherConfig{}, err
	}
	return weather, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Favorites.Validate(); err != nil {
		return err
	}
	if c.Favorites.Backend == FavoritesBackendDatabase {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if c.Favorites.Backend == FavoritesBackendRedis && c.Cache.Type != CacheTypeRedis {
		if err := c.Cache.Redis.Validate(); err != nil {
			return err
		}
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.UI.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.TimeoutSeconds < minTimeoutSeconds || w.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be between 8 and 10", nil)
	}
	if w.EnableCache && (w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes) {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if w.RateLimitPerSecond < 0 || w.RateLimitPerSecond > maxRateLimitPerSecond {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_RPS must be between 0 and 100", nil)
	}
	if w.RateLimitPerSecond > 0 && w.RateLimitBurst < 1 {
		return errors.NewConfigurationError("WEATHER_RATE_LIMIT_BURST must be at least 1", nil)
	}
	return nil
}

// HasAPIKey reports whether an API key was supplied
func (w WeatherConfig) HasAPIKey() bool {
	return strings.TrimSpace(w.APIKey) != ""
}

func (f *FavoritesConfig) Validate() error {
	switch f.Backend {
	case FavoritesBackendFile:
		if f.FilePath == "" {
			return errors.NewConfigurationError("FAVORITES_FILE_PATH cannot be empty when FAVORITES_BACKEND is file", nil)
		}
	case FavoritesBackendDatabase:
	case FavoritesBackendRedis:
		if f.RedisKey == "" {
			return errors.NewConfigurationError("FAVORITES_REDIS_KEY cannot be empty when FAVORITES_BACKEND is redis", nil)
		}
	default:
		return errors.NewConfigurationError("FAVORITES_BACKEND must be one of: file, database, redis", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case "postgres":
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "text", "json", "zap":
		return nil
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: text, json, zap", nil)
	}
}

func (u *UIConfig) Validate() error {
	switch u.Theme {
	case "dark", "light":
	default:
		return errors.NewConfigurationError("UI_THEME must be one of: dark, light", nil)
	}
	if u.ForecastDays < minForecastDays || u.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("UI_FORECAST_DAYS must be between 1 and 7", nil)
	}
	return nil
}
