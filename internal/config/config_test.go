package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_ADDR", "SHUTDOWN_TIMEOUT_SECONDS", "DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "PRODUCT_CACHE_TTL_SECONDS", "GEOIP_DB_PATH", "CLIENT_IP_HEADER", "COUNTRY_HEADER",
		"TRACKING_TIMEOUT_MS", "TRACKING_MAX_PENDING", "RATE_LIMIT", "CORS_ALLOW_ORIGIN", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
	// Keep a stray .env in the package directory from leaking in.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "CF-Connecting-IP", cfg.ClientIPHeader)
	assert.Equal(t, "CF-IPCountry", cfg.CountryHeader)
	assert.Equal(t, 5*time.Second, cfg.TrackingTimeout)
	assert.Equal(t, time.Minute, cfg.ProductCacheTTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
  shutdown_timeout_seconds: 30
database:
  url: "postgres://affiliate@db:5432/affiliate"
redis:
  addr: "redis:6379"
  product_ttl_seconds: 300
tracking:
  timeout_ms: 1500
  country_header: "X-Country"
http:
  rate_limit_per_minute: 30
log:
  format: console
`), 0o600))

	t.Setenv("HTTP_ADDR", ":9100")
	t.Setenv("TRACKING_MAX_PENDING", "64")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres://affiliate@db:5432/affiliate", cfg.DatabaseURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.TrackingTimeout)
	assert.Equal(t, "X-Country", cfg.CountryHeader)
	assert.Equal(t, 64, cfg.MaxPendingTracking)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("DATABASE_URL=libsql://affiliate.turso.io\nRATE_LIMIT=10\n"), 0o600))
	// godotenv never overrides variables that are already set, even when empty.
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("RATE_LIMIT"))
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("RATE_LIMIT")
	})

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "libsql://affiliate.turso.io", cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.RateLimit)
}

func TestLoad_InvalidInt(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT", "lots")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT")
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.DatabaseURL = " "
	cfg.RateLimit = 0
	cfg.TrackingTimeout = 0
	cfg.LogFormat = "xml"

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database url is required")
	assert.Contains(t, err.Error(), "rate limit must be positive")
	assert.Contains(t, err.Error(), "tracking timeout must be positive")
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}
