package config

import (
	"fmt"
	"strconv"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// ValidateConfig checks the configuration and reports every problem at once
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.APIKey == "" {
		errors = append(errors, "API_KEY environment variable or api_key secret is required")
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, fmt.Sprintf("SERVER_PORT %q is not a valid port", cfg.ServerPort))
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH must not be empty")
		}
	case DriverPostgres:
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			errors = append(errors, "DB_HOST, DB_NAME and DB_USER are required for the postgres driver")
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
	default:
		errors = append(errors, fmt.Sprintf("unknown DB_DRIVER %q (must be postgres or sqlite)", cfg.DBDriver))
	}

	if cfg.RedisEnabled() && (cfg.RateLimit <= 0 || cfg.RateLimitWindow <= 0) {
		errors = append(errors, "RATE_LIMIT and RATE_LIMIT_WINDOW must be positive when Redis is configured")
	}

	if !validLogLevels[cfg.LogLevel] {
		errors = append(errors, fmt.Sprintf("invalid LOG_LEVEL %q (must be debug, info, warn, or error)", cfg.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
