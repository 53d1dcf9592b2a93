package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysPresentFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"address": ":7070",
		"jwt_secret": "json-secret",
		"access_token_validity_duration": "30m"
	}`)
	resetArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, "json-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	// untouched fields keep their defaults
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	resetArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.Address)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	resetArgs(t, "-c", "/does/not/exist.json")

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}

func TestParseJson_InvalidJsonPanics(t *testing.T) {
	path := writeConfigFile(t, `{"address": `)
	resetArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
