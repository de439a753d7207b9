package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port          string   `env:"PORT" envDefault:"4000"`
	StoreURI      string   `env:"STORE_URI" envDefault:"mongodb://localhost:27017"`
	StoreDatabase string   `env:"STORE_DATABASE" envDefault:"healthtrack"`
	JWTSecret     string   `env:"JWT_SECRET"`
	UsersPath     string   `env:"USERS_PATH"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	EnforceRoles  bool     `env:"ENFORCE_ROLES" envDefault:"false"`
	CORSOrigins   []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// HTTPAddr is the listen address derived from Port.
func (c Config) HTTPAddr() string {
	return ":" + c.Port
}

// Load reads the process environment. There is no fallback signing secret.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}
