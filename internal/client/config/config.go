// Package config holds the devconnector CLI settings: defaults overlaid by
// DEVCONNECTOR_* environment variables. Command-line flags are applied by
// the cli package on top.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the devconnector CLI.
type Config struct {
	ServerEndpointAddr string        `env:"DEVCONNECTOR_SERVER"`
	RequestTimeout     time.Duration `env:"DEVCONNECTOR_REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
