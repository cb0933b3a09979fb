package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration of the redirect service.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DatabaseURL string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ProductCacheTTL time.Duration

	GeoIPDBPath        string
	ClientIPHeader     string
	CountryHeader      string
	TrackingTimeout    time.Duration
	MaxPendingTracking int

	RateLimit       int
	CORSAllowOrigin string

	LogLevel  string
	LogFormat string
}

// configFile mirrors the YAML schema of config.yaml.
type configFile struct {
	Server struct {
		Addr                   string `yaml:"addr"`
		ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr              string `yaml:"addr"`
		Password          string `yaml:"password"`
		DB                int    `yaml:"db"`
		ProductTTLSeconds int    `yaml:"product_ttl_seconds"`
	} `yaml:"redis"`
	Tracking struct {
		GeoIPDBPath    string `yaml:"geoip_db_path"`
		ClientIPHeader string `yaml:"client_ip_header"`
		CountryHeader  string `yaml:"country_header"`
		TimeoutMS      int    `yaml:"timeout_ms"`
		MaxPending     int    `yaml:"max_pending"`
	} `yaml:"tracking"`
	HTTP struct {
		RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
		CORSAllowOrigin    string `yaml:"cors_allow_origin"`
	} `yaml:"http"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		HTTPAddr:           ":8080",
		ShutdownTimeout:    10 * time.Second,
		DatabaseURL:        "data/affiliate.db",
		ProductCacheTTL:    time.Minute,
		ClientIPHeader:     "CF-Connecting-IP",
		CountryHeader:      "CF-IPCountry",
		TrackingTimeout:    5 * time.Second,
		MaxPendingTracking: 1024,
		RateLimit:          120,
		CORSAllowOrigin:    "*",
		LogLevel:           "info",
		LogFormat:          "json",
	}
}

// Load resolves configuration in priority order: defaults -> file -> .env -> env.
// A missing file or .env is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			var f configFile
			if err := yaml.Unmarshal(raw, &f); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
			f.applyTo(&cfg)
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	var err error
	cfg.HTTPAddr = envOrDefault("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DatabaseURL = envOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = envOrDefault("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = envOrDefault("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.GeoIPDBPath = envOrDefault("GEOIP_DB_PATH", cfg.GeoIPDBPath)
	cfg.ClientIPHeader = envOrDefault("CLIENT_IP_HEADER", cfg.ClientIPHeader)
	cfg.CountryHeader = envOrDefault("COUNTRY_HEADER", cfg.CountryHeader)
	cfg.CORSAllowOrigin = envOrDefault("CORS_ALLOW_ORIGIN", cfg.CORSAllowOrigin)
	cfg.LogLevel = strings.ToLower(envOrDefault("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(envOrDefault("LOG_FORMAT", cfg.LogFormat))

	if cfg.RedisDB, err = envInt("REDIS_DB", cfg.RedisDB); err != nil {
		return Config{}, err
	}
	if cfg.MaxPendingTracking, err = envInt("TRACKING_MAX_PENDING", cfg.MaxPendingTracking); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = envInt("RATE_LIMIT", cfg.RateLimit); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeout, time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ProductCacheTTL, err = envDuration("PRODUCT_CACHE_TTL_SECONDS", cfg.ProductCacheTTL, time.Second); err != nil {
		return Config{}, err
	}
	if cfg.TrackingTimeout, err = envDuration("TRACKING_TIMEOUT_MS", cfg.TrackingTimeout, time.Millisecond); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (f configFile) applyTo(cfg *Config) {
	if f.Server.Addr != "" {
		cfg.HTTPAddr = f.Server.Addr
	}
	if f.Server.ShutdownTimeoutSeconds > 0 {
		cfg.ShutdownTimeout = time.Duration(f.Server.ShutdownTimeoutSeconds) * time.Second
	}
	if f.Database.URL != "" {
		cfg.DatabaseURL = f.Database.URL
	}
	if f.Redis.Addr != "" {
		cfg.RedisAddr = f.Redis.Addr
	}
	if f.Redis.Password != "" {
		cfg.RedisPassword = f.Redis.Password
	}
	if f.Redis.DB > 0 {
		cfg.RedisDB = f.Redis.DB
	}
	if f.Redis.ProductTTLSeconds > 0 {
		cfg.ProductCacheTTL = time.Duration(f.Redis.ProductTTLSeconds) * time.Second
	}
	if f.Tracking.GeoIPDBPath != "" {
		cfg.GeoIPDBPath = f.Tracking.GeoIPDBPath
	}
	if f.Tracking.ClientIPHeader != "" {
		cfg.ClientIPHeader = f.Tracking.ClientIPHeader
	}
	if f.Tracking.CountryHeader != "" {
		cfg.CountryHeader = f.Tracking.CountryHeader
	}
	if f.Tracking.TimeoutMS > 0 {
		cfg.TrackingTimeout = time.Duration(f.Tracking.TimeoutMS) * time.Millisecond
	}
	if f.Tracking.MaxPending > 0 {
		cfg.MaxPendingTracking = f.Tracking.MaxPending
	}
	if f.HTTP.RateLimitPerMinute > 0 {
		cfg.RateLimit = f.HTTP.RateLimitPerMinute
	}
	if f.HTTP.CORSAllowOrigin != "" {
		cfg.CORSAllowOrigin = f.HTTP.CORSAllowOrigin
	}
	if f.Log.Level != "" {
		cfg.LogLevel = strings.ToLower(f.Log.Level)
	}
	if f.Log.Format != "" {
		cfg.LogFormat = strings.ToLower(f.Log.Format)
	}
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, errors.New("database url is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.TrackingTimeout <= 0 {
		errs = append(errs, errors.New("tracking timeout must be positive"))
	}
	if c.MaxPendingTracking <= 0 {
		errs = append(errs, errors.New("tracking max pending must be positive"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}
	if c.ProductCacheTTL <= 0 {
		errs = append(errs, errors.New("product cache ttl must be positive"))
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, fallback, unit time.Duration) (time.Duration, error) {
	n, err := envInt(key, int(fallback/unit))
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * unit, nil
}
