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
		"CI", "ENV", "SERVER_PORT", "SERVER_HOST", "DB_DRIVER", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE", "SQLITE_PATH", "API_KEY",
		"REDIS_URL", "REDIS_HOST", "REDIS_PASSWORD", "RATE_LIMIT", "RATE_LIMIT_WINDOW",
		"CORS_ORIGINS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "kitchen")
	t.Setenv("API_KEY", "test-key")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, http://frontend:5173")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "host=db port=5433 user=chef password=secret dbname=kitchen sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:5173", "http://frontend:5173"}, cfg.CORSOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Development, cfg.Environment)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, DefaultSQLitePath, cfg.SQLitePath)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigReadsSecrets(t *testing.T) {
	clearEnv(t)
	dir := os.Getenv("SECRETS_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api_key"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.APIKey)
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestValidateConfigCollectsAllErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	cfg := &Config{
		Environment: GetEnvironment(),
		ServerPort:  "http",
		DBDriver:    DriverPostgres,
		DBHost:      "db",
		DBName:      "recipes",
		DBUser:      "postgres",
		LogLevel:    "loud",
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "db_password")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidateConfigUnknownDriver(t *testing.T) {
	cfg := &Config{APIKey: "k", ServerPort: "8080", DBDriver: "mongo", LogLevel: "info"}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown DB_DRIVER "mongo"`)
}

func TestInMemoryDatabase(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"default sqlite path", Config{DBDriver: DriverSQLite, SQLitePath: DefaultSQLitePath}, true},
		{"plain memory path", Config{DBDriver: DriverSQLite, SQLitePath: ":memory:"}, true},
		{"sqlite file", Config{DBDriver: DriverSQLite, SQLitePath: "/var/lib/recipes.db"}, false},
		{"postgres", Config{DBDriver: DriverPostgres, SQLitePath: DefaultSQLitePath}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.InMemoryDatabase())
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "Production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
