package config

import (
	"fmt"
	"time"
)

// Config holds all the settings for the API server. The mutable runtime
// state (the reference dataset) lives in the refdata store, so Config is a
// plain value populated once from flags and environment at startup.
type Config struct {
	Port int
	Env  string

	// DataFile and DataURL select the reference dataset source. At most
	// one may be set; with neither, the embedded dataset is used.
	DataFile string
	DataURL  string

	// RefreshInterval controls how often a remote dataset is re-fetched.
	// Only meaningful when DataURL is set.
	RefreshInterval time.Duration

	// DatabasePath is the SQLite file holding saved trip plans.
	DatabasePath string

	// MaxRetries bounds the retry attempts for remote dataset fetches.
	MaxRetries int
}

// NewConfig creates a Config with the defaults the flag layer starts from.
func NewConfig(port int, env string) *Config {
	return &Config{
		Port:            port,
		Env:             env,
		RefreshInterval: time.Hour,
		DatabasePath:    "tabiplan.db",
		MaxRetries:      3,
	}
}

// Validate checks the settings that cannot be defaulted into sanity.
func (cfg *Config) Validate() error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.Env {
	case "development", "staging", "production", "testing":
	default:
		return fmt.Errorf("invalid environment %q", cfg.Env)
	}

	if cfg.DataFile != "" && cfg.DataURL != "" {
		return fmt.Errorf("only one of data file and data URL can be specified")
	}

	if cfg.RefreshInterval < time.Minute {
		return fmt.Errorf("refresh interval %s is below the one minute floor", cfg.RefreshInterval)
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("max retries must not be negative")
	}

	return nil
}
