package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is the DTO for environment-sourced settings. The token lifetime
// is spelled in minutes, matching the deployment convention.
type envConfig struct {
	Address                  string `env:"ADDRESS"`
	DatabaseDSN              string `env:"DATABASE_DSN"`
	JWTSecret                string `env:"JWT_SECRET"`
	JWTAlgorithm             string `env:"JWT_ALGORITHM"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	LogLevel                 string `env:"LOG_LEVEL"`
}

// parseEnv overlays values from the environment. Unset variables leave the
// current values untouched.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
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
	if c.AccessTokenExpireMinutes > 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenExpireMinutes) * time.Minute
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
