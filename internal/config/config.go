package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Logger  LoggerConfig
	Relay   RelayConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
}

// StorageConfig holds slot persistence configuration.
type StorageConfig struct {
	DataDir string `env:"DATA_DIR" envDefault:"data"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "console"
}

// RelayConfig holds the external form-relay endpoint configuration. An empty
// URL disables outbound notifications entirely.
type RelayConfig struct {
	URL     string        `env:"RELAY_URL"`
	Timeout time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a relay endpoint is configured.
func (c *RelayConfig) Enabled() bool {
	return c.URL != ""
}

// Address returns the server listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("data directory is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Relay.URL != "" {
		u, err := url.Parse(c.Relay.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid relay URL: %s", c.Relay.URL)
		}
	}

	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("relay timeout must be positive")
	}

	return nil
}
