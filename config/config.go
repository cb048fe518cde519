// Package config handles the tempo configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/spiffcs/tempo/internal/humanize"
)

// Defaults applied when a key is absent from every config file.
const (
	DefaultMaxUnits  = 6
	DefaultPrecision = "seconds"
)

// Config represents the application configuration
type Config struct {
	// MaxUnits caps how many unit phrases appear in humanized durations.
	MaxUnits int `yaml:"max_units,omitempty"`

	// Precision names the finest time unit to report (e.g. "seconds").
	Precision string `yaml:"precision,omitempty"`

	// Color toggles colored terminal output. nil means enabled.
	Color *bool `yaml:"color,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".tempo"
	}
	return filepath.Join(configDir, "tempo")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".tempo.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the XDG config directory, then merges
// any local .tempo.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{
		MaxUnits:  DefaultMaxUnits,
		Precision: DefaultPrecision,
	}

	globalPath := ConfigPath()
	if _, err := os.Stat(globalPath); err == nil {
		data, err := os.ReadFile(globalPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read global config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse global config file: %w", err)
		}
	}

	localPath := LocalConfigPath()
	if _, err := os.Stat(localPath); err == nil {
		data, err := os.ReadFile(localPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read local config file: %w", err)
		}
		local := &Config{}
		if err := yaml.Unmarshal(data, local); err != nil {
			return nil, fmt.Errorf("failed to parse local config file: %w", err)
		}
		cfg = mergeConfig(cfg, local)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig overlays local values on top of global ones.
func mergeConfig(global, local *Config) *Config {
	result := *global
	if local.MaxUnits != 0 {
		result.MaxUnits = local.MaxUnits
	}
	if local.Precision != "" {
		result.Precision = local.Precision
	}
	if local.Color != nil {
		result.Color = local.Color
	}
	return &result
}

func (c *Config) validate() error {
	if c.MaxUnits <= 0 {
		return fmt.Errorf("invalid max_units: %d (must be positive)", c.MaxUnits)
	}
	if _, err := humanize.ParseUnit(c.Precision); err != nil {
		return fmt.Errorf("invalid precision: %w", err)
	}
	return nil
}

// PrecisionUnit returns the configured precision as a unit value.
func (c *Config) PrecisionUnit() humanize.Unit {
	u, err := humanize.ParseUnit(c.Precision)
	if err != nil {
		return humanize.Seconds
	}
	return u
}

// ColorEnabled reports whether colored output is on. Unset means on.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetMaxUnits validates and persists the max_units key.
func (c *Config) SetMaxUnits(n int) error {
	if n <= 0 {
		return fmt.Errorf("invalid max_units: %d (must be positive)", n)
	}
	c.MaxUnits = n
	return c.Save()
}

// SetPrecision validates and persists the precision key.
func (c *Config) SetPrecision(s string) error {
	u, err := humanize.ParseUnit(s)
	if err != nil {
		return err
	}
	c.Precision = u.String()
	return c.Save()
}

// SetColor persists the color key.
func (c *Config) SetColor(enabled bool) error {
	c.Color = &enabled
	return c.Save()
}

// ToYAML renders the config as YAML for display.
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
