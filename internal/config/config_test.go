package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "brittech-api", cfg.JWTIssuer)
				assert.Equal(t, "brittech-clients", cfg.JWTAudience)
				assert.Equal(t, 60*time.Minute, cfg.AccessTokenTTL)
				assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
				assert.Equal(t, 5*time.Minute, cfg.RefreshLeeway)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":               "mysql",
				"DB_CONNECTION_STRING":    "user:password@tcp(localhost:3306)/testdb",
				"DB_MAX_OPEN_CONNECTIONS": "50",
				"DB_MAX_IDLE_CONNECTIONS": "10",
				"DB_CONN_MAX_LIFETIME":    "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom token lifetimes",
			envVars: map[string]string{
				"ACCESS_TOKEN_TTL_MINUTES": "15",
				"REFRESH_TOKEN_TTL_DAYS":   "30",
				"REFRESH_LEEWAY_MINUTES":   "2",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
				assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenTTL)
				assert.Equal(t, 2*time.Minute, cfg.RefreshLeeway)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestValidateAuth(t *testing.T) {
	t.Run("missing signing key is fatal", func(t *testing.T) {
		cfg := &Config{JWTSigningKey: ""}
		err := cfg.ValidateAuth()
		require.Error(t, err)
	})

	t.Run("short signing key is fatal", func(t *testing.T) {
		cfg := &Config{JWTSigningKey: "too-short"}
		err := cfg.ValidateAuth()
		require.Error(t, err)
	})

	t.Run("32 byte signing key is accepted", func(t *testing.T) {
		cfg := &Config{JWTSigningKey: strings.Repeat("k", 32)}
		assert.NoError(t, cfg.ValidateAuth())
	})
}

func TestGetGinMode(t *testing.T) {
	tests := []struct {
		logLevel string
		expected string
	}{
		{"debug", "debug"},
		{"info", "release"},
		{"warn", "release"},
		{"error", "release"},
		{"unknown", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			assert.Equal(t, tt.expected, cfg.GetGinMode())
		})
	}
}
