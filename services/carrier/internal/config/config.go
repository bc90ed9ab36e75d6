package config

import (
	"fmt"

	pkgconfig "github.com/oms-integration/mockcommerce/pkg/config"
)

// Config holds all configuration for the shipping carrier stub.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"CARRIER_HTTP_PORT" envDefault:"8003"`

	// SeedData controls whether the initial label, tracking record and
	// pickup are loaded at startup.
	SeedData bool `env:"CARRIER_SEED_DATA" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load carrier config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	return nil
}
