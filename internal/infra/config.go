package infra

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config represents application configuration loaded from environment
// variables. WriteTimeout must stay above ProviderTimeout or slow provider
// probes get cut off mid-response.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   string `env:"PORT" envDefault:"8000"`

	ProviderBaseURL string        `env:"PROVIDER_BASE_URL" envDefault:"https://image.pollinations.ai"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"45s"`
	HTTPIdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// LoadConfig parses configuration from the environment and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.HTTPWriteTimeout <= cfg.ProviderTimeout {
		cfg.HTTPWriteTimeout = cfg.ProviderTimeout + 15*time.Second
	}
	return cfg, nil
}
