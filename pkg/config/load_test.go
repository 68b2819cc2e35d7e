package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.exchangerate-api.com/v4", cfg.ExchangeRate.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.ExchangeRate.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.ExchangeRateCache.TTL)
	assert.Equal(t, "*", cfg.Cors.AllowOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/lumeo")
	t.Setenv("EXCHANGE_RATE_CACHE_TTL", "30m")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/lumeo", cfg.DB.Url)
	assert.Equal(t, 30*time.Minute, cfg.ExchangeRateCache.TTL)
}
