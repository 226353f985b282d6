package config

import (
	"os"
	"strings"
)

// Environment variables read by loadFromEnv.
const (
	EnvEndpoint = "TASKBOARD_ENDPOINT"
	EnvTheme    = "TASKBOARD_THEME"
	EnvDark     = "TASKBOARD_DARK"
	EnvLogLevel = "TASKBOARD_LOG_LEVEL"
	EnvLogFile  = "TASKBOARD_LOG_FILE"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvEndpoint)); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDark)); v != "" {
		cfg.Dark = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
}
