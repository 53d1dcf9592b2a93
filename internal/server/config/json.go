package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avolkovs/clippings/internal/flagx"
	"github.com/avolkovs/clippings/internal/timex"
)

// JsonConfig is the DTO for the optional JSON config file. Interval fields
// use timex.Duration so both "168h" and integer nanoseconds parse.
type JsonConfig struct {
	Address                     string         `json:"address"`
	DatabaseDSN                 string         `json:"database_dsn"`
	JWTSecret                   string         `json:"jwt_secret"`
	JWTAlgorithm                string         `json:"jwt_algorithm"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson overlays values from the JSON file named by -c/-config, if any.
// Only fields present in the file override the current values. An unreadable
// or invalid file panics: a config file that exists but cannot be used is a
// startup fault, not a condition to run through.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.JWTAlgorithm != "" {
		config.JWTAlgorithm = c.JWTAlgorithm
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
