package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Cache backends
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Recipe cache
	CacheBackend string
	CacheTTL     time.Duration

	// JWT configuration
	JWTSecret     string
	JWTExpiration time.Duration

	CORSAllowedOrigins []string

	// RecipeCreationLimit is the number of recipes a user may create per hour. 0 disables the limit.
	RecipeCreationLimit int
}

// lookupFunc returns the value stored under a lower_snake_case key
type lookupFunc func(key string) string

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	var lookup lookupFunc
	switch {
	case !env.UsesSecrets():
		lookup = envLookup
	case env == Production:
		lookup = readSecret
	default:
		lookup = secretOrEnvLookup
	}

	cfg, err := load(lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func load(lookup lookupFunc) (*Config, error) {
	get := func(key, fallback string) string {
		if v := lookup(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		ServerPort:    get("server_port", "8080"),
		ServerHost:    get("server_host", "0.0.0.0"),
		DBDriver:      get("db_driver", DriverPostgres),
		DBHost:        get("db_host", ""),
		DBPort:        get("db_port", "5432"),
		DBUser:        get("db_user", ""),
		DBPassword:    get("db_password", ""),
		DBName:        get("db_name", ""),
		DBSSLMode:     get("db_ssl_mode", "disable"),
		SQLitePath:    get("sqlite_path", "cookbook.db"),
		RedisHost:     get("redis_host", ""),
		RedisPort:     get("redis_port", "6379"),
		RedisPassword: get("redis_password", ""),
		RedisURL:      get("redis_url", ""),
		CacheBackend:  get("cache_backend", CacheMemory),
		JWTSecret:     get("jwt_secret", ""),
	}

	origins := get("cors_allowed_origins", "http://localhost:4200")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	var errs []string
	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("redis_db", "0")); err != nil {
		errs = append(errs, fmt.Sprintf("redis_db: %v", err))
	}
	if cfg.CacheTTL, err = time.ParseDuration(get("cache_ttl", "10m")); err != nil {
		errs = append(errs, fmt.Sprintf("cache_ttl: %v", err))
	}
	if cfg.JWTExpiration, err = time.ParseDuration(get("jwt_expiration", "24h")); err != nil {
		errs = append(errs, fmt.Sprintf("jwt_expiration: %v", err))
	}
	if cfg.RecipeCreationLimit, err = strconv.Atoi(get("recipe_creation_limit", "20")); err != nil {
		errs = append(errs, fmt.Sprintf("recipe_creation_limit: %v", err))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid values:\n%s", strings.Join(errs, "\n"))
	}

	return cfg, nil
}

// RedisEnabled reports whether a Redis server is configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// Addr returns the address the HTTP server listens on
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// envLookup reads configuration from environment variables (SERVER_PORT for server_port)
func envLookup(key string) string {
	return os.Getenv(strings.ToUpper(key))
}

// secretOrEnvLookup prefers a Docker secret and falls back to the environment
func secretOrEnvLookup(key string) string {
	if v := readSecret(key); v != "" {
		return v
	}
	return envLookup(key)
}

func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretPath := filepath.Join(secretsDir(), name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
