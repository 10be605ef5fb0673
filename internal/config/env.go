package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, if present; its absence is
// not an error.
//
// Recognized variables:
//
//	ECOFINDS_DB     - database file path
//	ECOFINDS_TOAST  - toast duration, e.g. "3s"
//	ECOFINDS_LOG    - log level
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ECOFINDS_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("ECOFINDS_TOAST"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ToastDuration = d
		}
	}
	if v := os.Getenv("ECOFINDS_LOG"); v != "" {
		cfg.LogLevel = v
	}
}
