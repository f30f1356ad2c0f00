package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGoogle = "google"
	ProviderMapbox = "mapbox"

	CacheBackendRedis    = "redis"
	CacheBackendPostgres = "postgres"
	CacheBackendNone     = "none"
)

type Config struct {
	Server   ServerConfig
	Maps     MapsConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Session  SessionConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type MapsConfig struct {
	Provider       string
	APIKey         string
	BrowserKey     string
	MapID          string
	BaseURL        string
	Region         string
	RequestTimeout time.Duration
	RouteTimeout   time.Duration
	DefaultLat     float64
	DefaultLng     float64
	DefaultZoom    int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Backend         string
	DirectionsTTL   time.Duration
	GeocodeTTL      time.Duration
	AutocompleteTTL time.Duration
}

type SessionConfig struct {
	CookieName    string
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type WorkerConfig struct {
	ShutdownTimeout    time.Duration
	CachePurgeInterval time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads .env when present and lets the process environment override it.
func Load() (*Config, error) {
	v := viper.New()
	return load(v, ".env")
}

func load(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Maps: MapsConfig{
			Provider:       strings.ToLower(strings.TrimSpace(v.GetString("MAPS_PROVIDER"))),
			APIKey:         v.GetString("MAPS_API_KEY"),
			BrowserKey:     v.GetString("MAPS_BROWSER_KEY"),
			MapID:          v.GetString("MAPS_MAP_ID"),
			BaseURL:        v.GetString("MAPS_BASE_URL"),
			Region:         v.GetString("MAPS_REGION"),
			RequestTimeout: time.Duration(v.GetInt("MAPS_REQUEST_TIMEOUT")) * time.Second,
			RouteTimeout:   time.Duration(v.GetInt("ROUTE_REQUEST_TIMEOUT")) * time.Second,
			DefaultLat:     v.GetFloat64("MAP_DEFAULT_LAT"),
			DefaultLng:     v.GetFloat64("MAP_DEFAULT_LNG"),
			DefaultZoom:    v.GetInt("MAP_DEFAULT_ZOOM"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Backend:         strings.ToLower(strings.TrimSpace(v.GetString("CACHE_BACKEND"))),
			DirectionsTTL:   time.Duration(v.GetInt("DIRECTIONS_CACHE_TTL")) * time.Second,
			GeocodeTTL:      time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			AutocompleteTTL: time.Duration(v.GetInt("AUTOCOMPLETE_CACHE_TTL")) * time.Second,
		},
		Session: SessionConfig{
			CookieName:    v.GetString("SESSION_COOKIE_NAME"),
			IdleTTL:       time.Duration(v.GetInt("SESSION_IDLE_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Worker: WorkerConfig{
			ShutdownTimeout:    time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
			CachePurgeInterval: time.Duration(v.GetInt("CACHE_PURGE_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	// The browser key falls back to the server key: one credential is enough to run.
	if cfg.Maps.BrowserKey == "" {
		cfg.Maps.BrowserKey = cfg.Maps.APIKey
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("MAPS_PROVIDER", ProviderGoogle)
	v.SetDefault("MAPS_MAP_ID", "9c34d1df61f5a2ad")
	v.SetDefault("MAPS_REGION", "")
	v.SetDefault("MAPS_REQUEST_TIMEOUT", 10)
	v.SetDefault("ROUTE_REQUEST_TIMEOUT", 30)
	v.SetDefault("MAP_DEFAULT_LAT", 43.0)
	v.SetDefault("MAP_DEFAULT_LNG", -80.0)
	v.SetDefault("MAP_DEFAULT_ZOOM", 10)

	v.SetDefault("CACHE_BACKEND", CacheBackendRedis)
	v.SetDefault("DIRECTIONS_CACHE_TTL", 3600)
	v.SetDefault("GEOCODE_CACHE_TTL", 86400)
	v.SetDefault("AUTOCOMPLETE_CACHE_TTL", 600)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "commute")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 1800)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 300)

	v.SetDefault("SESSION_COOKIE_NAME", "commute_session")
	v.SetDefault("SESSION_IDLE_TTL", 7200)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 300)

	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("CACHE_PURGE_INTERVAL", 600)
}

func (c *Config) validate() error {
	switch c.Maps.Provider {
	case ProviderGoogle, ProviderMapbox:
	default:
		return fmt.Errorf("unsupported MAPS_PROVIDER %q", c.Maps.Provider)
	}

	switch c.Cache.Backend {
	case CacheBackendRedis, CacheBackendPostgres, CacheBackendNone:
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.Cache.Backend)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid API_PORT %d", c.Server.Port)
	}

	return nil
}

// HasMapsCredential reports whether the provider SDK can be initialised at all.
func (c *Config) HasMapsCredential() bool {
	return strings.TrimSpace(c.Maps.APIKey) != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
