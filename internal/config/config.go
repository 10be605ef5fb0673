// Package config holds runtime settings for the EcoFinds app and loads them
// from layered sources: defaults, then environment (with optional .env
// file), then a JSON config file, then command-line flags. Later sources
// take precedence.
package config

import "time"

// Config holds runtime settings for the EcoFinds CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite database file.
//   - ToastDuration: how long a notification stays visible.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabasePath  string
	ToastDuration time.Duration
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "ecofinds.db"
	c.ToastDuration = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
