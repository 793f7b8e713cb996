package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCIEnv(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "cookbook")
	t.Setenv("DB_SSL_MODE", "disable")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
}

func TestLoadConfigCI(t *testing.T) {
	setCIEnv(t)
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200, https://cookbook.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Test database configuration
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "cookbook", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)

	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"http://localhost:4200", "https://cookbook.example.com"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "cookbook.db", cfg.SQLitePath)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.RecipeCreationLimit)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigDevelopmentPrefersSecrets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db_password"), []byte("secret-pass"), 0o600))

	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_NAME", "cookbook")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
	assert.Equal(t, "secret-pass", cfg.DBPassword)
	assert.Equal(t, "db", cfg.DBHost)
}

func TestLoadConfigProductionIgnoresEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("JWT_SECRET", "from-env")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret: is required")
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	setCIEnv(t)
	t.Setenv("CACHE_TTL", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache_ttl")
}

func TestValidateConfigAggregatesErrors(t *testing.T) {
	cfg := &Config{
		ServerPort:    "8080",
		DBDriver:      "mysql",
		CacheBackend:  CacheRedis,
		JWTExpiration: time.Hour,
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret: is required")
	assert.Contains(t, err.Error(), `db_driver: unsupported driver "mysql"`)
	assert.Contains(t, err.Error(), "redis_url")
	assert.Contains(t, err.Error(), "cors_allowed_origins")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, GetEnvironment().UsesSecrets())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
	assert.False(t, GetEnvironment().UsesSecrets())
}

func TestParseEnvironment(t *testing.T) {
	tests := map[string]Environment{
		"":            Development,
		"development": Development,
		" Test ":      Test,
		"PROD":        Production,
		"production":  Production,
		"ci":          CI,
		"staging":     Development,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseEnvironment(input), "input %q", input)
	}
}
