// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"

	"dimensional/core/numeric"
	"dimensional/internal/errors"
	"dimensional/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Arithmetic contains the precision of inexact decimal paths
	Arithmetic numeric.Precision `json:"arithmetic"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format (text, json)
	Format string `json:"format"`

	// ShowNotes includes catalog notes in listings
	ShowNotes bool `json:"show_notes"`
}

// maxRootDigits is the most significant digits a float64 root estimate can carry
const maxRootDigits = 17

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:    "1.0",
		Arithmetic: numeric.DefaultPrecision(),
		Output: OutputConfig{
			Format:    "text",
			ShowNotes: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.dimensional.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".dimensional.json")
}

// Load loads configuration from a file. Files ending in .hcl are decoded
// as HCL, anything else as JSON. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	var (
		cfg *Config
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		cfg, err = loadHCL(path)
	} else {
		cfg, err = loadJSON(path)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Config("failed to parse config", err).WithContext("path", path)
	}
	return cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.Config("invalid output format", nil).WithContext("format", c.Output.Format)
	}
	if c.Arithmetic.DivisionPlaces < 0 {
		return errors.Config("division_places must not be negative", nil)
	}
	if c.Arithmetic.RootDigits < 0 || c.Arithmetic.RootDigits > maxRootDigits {
		return errors.Config("root_digits must be between 0 and 17", nil)
	}
	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return errors.Config("invalid log level", err)
		}
	}
	return nil
}

// Apply pushes the arithmetic settings into the numeric package
func (c *Config) Apply() {
	numeric.Configure(c.Arithmetic)
}

// Save saves configuration to a file as JSON
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
