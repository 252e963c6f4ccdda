package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "JOBLY"

// parseEnv overlays cfg with JOBLY_* environment variables. Unset or empty
// variables are ignored.
func parseEnv(cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	setIfNotEmpty(&cfg.BaseURL, v.GetString("base_url"))
	setIfNotEmpty(&cfg.StoreDriver, v.GetString("store_driver"))
	setIfNotEmpty(&cfg.StoreDSN, v.GetString("store_dsn"))
	setIfNotEmpty(&cfg.LogFile, v.GetString("log_file"))
	setIfNotEmpty(&cfg.LogLevel, v.GetString("log_level"))

	if s := v.GetString("request_timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("%s_REQUEST_TIMEOUT: %w", envPrefix, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
