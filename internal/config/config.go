package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"LedgerVoice"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Secret signs webhook bearer tokens; leaving it empty disables
		// authentication, which is only sensible for local development.
		Secret string `envconfig:"AUTH_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

// Addr is the listen address derived from the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// AuthEnabled reports whether webhook requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return strings.TrimSpace(c.Auth.Secret) != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
