package config

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig(4000, "development")

	if cfg.Port != 4000 {
		t.Errorf("Expected port 4000, got %d", cfg.Port)
	}
	if cfg.RefreshInterval != time.Hour {
		t.Errorf("Expected default refresh interval 1h, got %s", cfg.RefreshInterval)
	}
	if cfg.DatabasePath == "" {
		t.Error("Expected a default database path")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"unknown environment", func(c *Config) { c.Env = "prod" }},
		{"both data sources", func(c *Config) {
			c.DataFile = "japan.json"
			c.DataURL = "https://example.com/japan.json"
		}},
		{"refresh below floor", func(c *Config) { c.RefreshInterval = time.Second }},
		{"negative retries", func(c *Config) { c.MaxRetries = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig(4000, "development")
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
