package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "ontoscope.yaml"

// Config holds all ontoscope configuration.
type Config struct {
	// Default 2-letter language code when --lang is not given
	Lang string `yaml:"lang"`

	// Table rendering
	Display DisplayConfig `yaml:"display"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig configures table rendering.
type DisplayConfig struct {
	Theme string `yaml:"theme"` // plain, light, dark, auto
	Title bool   `yaml:"title"` // print a title line above the table
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Lang: "en",

		Display: DisplayConfig{
			Theme: "plain",
			Title: false,
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("ONTOSCOPE_LANG"); lang != "" {
		c.Lang = lang
	}
	if theme := os.Getenv("ONTOSCOPE_THEME"); theme != "" {
		c.Display.Theme = theme
	}
	if level := os.Getenv("ONTOSCOPE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("ONTOSCOPE_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// ValidThemes lists the accepted display themes.
var ValidThemes = []string{"plain", "light", "dark", "auto"}

// ValidLogLevels lists the accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(strings.TrimSpace(c.Lang)) != 2 {
		return fmt.Errorf("invalid lang %q: expected a 2-letter code", c.Lang)
	}
	if !oneOf(c.Display.Theme, ValidThemes) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Display.Theme, ValidThemes)
	}
	if !oneOf(c.Logging.Level, ValidLogLevels) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

func oneOf(v string, valid []string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
