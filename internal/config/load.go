package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "GfxExamples")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GfxExamples")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gfx-examples")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gfx-examples")
	}
}

// Validate checks values that would make the demos unusable.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Animator.Resolution < 3 {
		return fmt.Errorf("%w: animator resolution %d is below 3", ErrInvalid, c.Animator.Resolution)
	}
	if c.Animator.Duration <= 0 {
		return fmt.Errorf("%w: animator duration %v", ErrInvalid, c.Animator.Duration)
	}
	if c.Shaders.Watch && c.Shaders.Dir == "" {
		return fmt.Errorf("%w: shader watching needs a shader directory", ErrInvalid)
	}
	return nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
