package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobly/internal/flagx"
	"github.com/dmitrijs2005/jobly/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	StoreDriver    string         `json:"store_driver"`
	StoreDSN       string         `json:"store_dsn"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogFile        *string        `json:"log_file"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file given by -c/-config in args.
// No flag means nothing to load. Keys missing from the file are left alone;
// log_file may be set to "" explicitly to log to stderr.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIfNotEmpty(&cfg.BaseURL, jc.BaseURL)
	setIfNotEmpty(&cfg.StoreDriver, jc.StoreDriver)
	setIfNotEmpty(&cfg.StoreDSN, jc.StoreDSN)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
