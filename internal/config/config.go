package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a claimsrv run.
type Config struct {
	DSN           string
	FilePath      string // CSV path for the load command
	ListenAddr    string
	LogFormat     string // "text" or "json"
	LogLevel      string // zerolog level name
	RatePerMinute int    // per-client request budget on rate-limited routes
	RateBurst     int
}

// Defaults for the server-side knobs the YAML overlay can override.
const (
	DefaultListenAddr    = ":8080"
	DefaultRatePerMinute = 10
	DefaultRateBurst     = 10
)

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	ListenAddr    string `yaml:"listen_addr"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	RateBurst     int    `yaml:"rate_burst"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Absent keys keep their current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.ListenAddr != "" {
		c.ListenAddr = yc.ListenAddr
	}
	if yc.RatePerMinute != 0 {
		c.RatePerMinute = yc.RatePerMinute
	}
	if yc.RateBurst != 0 {
		c.RateBurst = yc.RateBurst
	}
	return c.validateRate()
}

func (c *Config) validateRate() error {
	if c.RatePerMinute < 0 || c.RateBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	return nil
}

// ValidateWithDSN checks that a database connection string is configured.
func (c *Config) ValidateWithDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

// ValidateFile checks the CSV file argument for the load command.
func (c *Config) ValidateFile() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}
