// Package config loads runtime configuration for the Jobly CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the JOBLY_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-d string   DSN of the local store
//	-t int      request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	JOBLY_BASE_URL, JOBLY_STORE_DRIVER, JOBLY_STORE_DSN,
//	JOBLY_REQUEST_TIMEOUT, JOBLY_LOG_FILE, JOBLY_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "10s" or integer nanoseconds. Omitted keys keep their value:
//
//	{
//	  "base_url": "http://localhost:3001",
//	  "store_driver": "sqlite",
//	  "store_dsn": "jobly.db",
//	  "request_timeout": "10s",
//	  "log_file": "jobly.log",
//	  "log_level": "info"
//	}
package config
