package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"CLAIMS_APP_NAME":            os.Getenv("CLAIMS_APP_NAME"),
		"CLAIMS_APP_ENV":             os.Getenv("CLAIMS_APP_ENV"),
		"CLAIMS_APP_PORT":            os.Getenv("CLAIMS_APP_PORT"),
		"CLAIMS_DATABASE_HOST":       os.Getenv("CLAIMS_DATABASE_HOST"),
		"CLAIMS_DATABASE_PASSWORD":   os.Getenv("CLAIMS_DATABASE_PASSWORD"),
		"CLAIMS_DATABASE_SSLMODE":    os.Getenv("CLAIMS_DATABASE_SSLMODE"),
		"CLAIMS_CLAIMS_API_BASE_URL": os.Getenv("CLAIMS_CLAIMS_API_BASE_URL"),
		"CLAIMS_LEDGER_BASE_URL":     os.Getenv("CLAIMS_LEDGER_BASE_URL"),
		"CLAIMS_CREDENTIALS_BACKEND": os.Getenv("CLAIMS_CREDENTIALS_BACKEND"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "claims-console", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "claims", cfg.Database.DBName)
		assert.Equal(t, "http://localhost:3000", cfg.ClaimsAPI.BaseURL)
		assert.Equal(t, "http://localhost:8000", cfg.Ledger.BaseURL)
		assert.Equal(t, "memory", cfg.Credentials.Backend)
	})

	t.Run("loads values from environment variables with CLAIMS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("CLAIMS_APP_NAME", "test-console")
		os.Setenv("CLAIMS_DATABASE_HOST", "testdb.local")
		os.Setenv("CLAIMS_LEDGER_BASE_URL", "https://ledger.test:9443")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-console", cfg.App.Name)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, "https://ledger.test:9443", cfg.Ledger.BaseURL)
	})

	t.Run("rejects unknown credential backend", func(t *testing.T) {
		clearEnv()
		os.Setenv("CLAIMS_CREDENTIALS_BACKEND", "cookies")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials.backend")
	})

	t.Run("rejects relative upstream URLs", func(t *testing.T) {
		clearEnv()
		os.Setenv("CLAIMS_LEDGER_BASE_URL", "/escrow")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger.base_url")
	})

	t.Run("enforces production requirements", func(t *testing.T) {
		clearEnv()
		os.Setenv("CLAIMS_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "p@ss/word",
		DBName:   "claims",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", cfg.Addr())
}
