package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Jobly CLI.
//
// Fields:
//   - BaseURL: root URL of the Jobly REST backend.
//   - StoreDriver / StoreDSN: database/sql driver ("sqlite" or "pgx") and DSN
//     of the local store that keeps the session credential.
//   - RequestTimeout: upper bound for a single API call.
//   - LogFile / LogLevel: JSON log destination (empty means stderr) and level.
type Config struct {
	BaseURL        string
	StoreDriver    string
	StoreDSN       string
	RequestTimeout time.Duration
	LogFile        string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3001"
	c.StoreDriver = "sqlite"
	c.StoreDSN = "jobly.db"
	c.RequestTimeout = 10 * time.Second
	c.LogFile = "jobly.log"
	c.LogLevel = "info"
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then JOBLY_* environment variables, then flags. Later sources take
// precedence. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
