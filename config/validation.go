package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the loaded configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError
	require := func(field, value string) {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"})
		}
	}

	require("server_port", cfg.ServerPort)
	require("jwt_secret", cfg.JWTSecret)

	switch cfg.DBDriver {
	case DriverPostgres:
		require("db_host", cfg.DBHost)
		require("db_port", cfg.DBPort)
		require("db_user", cfg.DBUser)
		require("db_password", cfg.DBPassword)
		require("db_name", cfg.DBName)
	case DriverSQLite:
		require("sqlite_path", cfg.SQLitePath)
	default:
		errs = append(errs, ValidationError{Field: "db_driver", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	switch cfg.CacheBackend {
	case CacheMemory:
	case CacheRedis:
		if !cfg.RedisEnabled() {
			errs = append(errs, ValidationError{Field: "redis_url", Message: "redis_url or redis_host is required for the redis cache backend"})
		}
	default:
		errs = append(errs, ValidationError{Field: "cache_backend", Message: fmt.Sprintf("unsupported backend %q", cfg.CacheBackend)})
	}

	if cfg.CacheTTL < 0 {
		errs = append(errs, ValidationError{Field: "cache_ttl", Message: "must not be negative"})
	}
	if cfg.JWTExpiration <= 0 {
		errs = append(errs, ValidationError{Field: "jwt_expiration", Message: "must be positive"})
	}
	if cfg.RecipeCreationLimit < 0 {
		errs = append(errs, ValidationError{Field: "recipe_creation_limit", Message: "must not be negative"})
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		errs = append(errs, ValidationError{Field: "cors_allowed_origins", Message: "at least one origin is required"})
	}

	if len(errs) > 0 {
		lines := make([]string, len(errs))
		for i, e := range errs {
			lines[i] = e.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
	}

	return nil
}
