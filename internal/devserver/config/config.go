// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the dev server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - SecretKey: HMAC secret for signing tokens (HS256). Development only.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogLevel: slog level name.
type Config struct {
	ListenAddr      string
	SecretKey       string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3001"
	c.SecretKey = "secret-dev"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// Load builds a Config by applying defaults, then the JSON file given by
// -c/-config, then command-line flags. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
