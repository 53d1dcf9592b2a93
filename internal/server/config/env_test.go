package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysSetVariables(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "debug", cfg.LogLevel)
	// unset variables leave defaults alone
	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
}

func TestParseEnv_EmptyEnvironmentKeepsDefaults(t *testing.T) {
	t.Setenv("ADDRESS", "")
	t.Setenv("JWT_SECRET", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8080", cfg.Address)
	assert.Empty(t, cfg.JWTSecret)
}
