package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the editor options. The core never reads ambient state; a
// Config is always passed explicitly into document loading.
type Config struct {
	// FontFamily and FontSize are styling hints handed through to loaded
	// documents. They never affect structure.
	FontFamily string
	FontSize   float64

	// PreviewTTL is how long a cached markdown preview stays valid when
	// nothing changed.
	PreviewTTL time.Duration

	// NotifyWindow is the coalescing window for outbound change
	// notifications. Zero disables coalescing.
	NotifyWindow time.Duration

	LogFile string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		FontFamily:   "Sans Serif",
		FontSize:     14,
		PreviewTTL:   100 * time.Millisecond,
		NotifyWindow: 50 * time.Millisecond,
		LogFile:      "/tmp/notedown.log",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "notedown", "config.yaml")
	}
	return filepath.Join(home, ".config", "notedown", "config.yaml")
}

// rawConfig is the on-disk YAML shape; durations are strings.
type rawConfig struct {
	FontFamily   string  `yaml:"font_family"`
	FontSize     float64 `yaml:"font_size"`
	PreviewTTL   string  `yaml:"preview_ttl"`
	NotifyWindow string  `yaml:"notify_window"`
	LogFile      string  `yaml:"log_file"`
}

// Load reads configuration from the XDG config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := DefaultConfig()
	if raw.FontFamily != "" {
		cfg.FontFamily = raw.FontFamily
	}
	if raw.FontSize > 0 {
		cfg.FontSize = raw.FontSize
	}
	if raw.LogFile != "" {
		cfg.LogFile = raw.LogFile
	}
	if raw.PreviewTTL != "" {
		ttl, err := time.ParseDuration(raw.PreviewTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid preview_ttl '%s': %w", raw.PreviewTTL, err)
		}
		cfg.PreviewTTL = ttl
	}
	if raw.NotifyWindow != "" {
		window, err := time.ParseDuration(raw.NotifyWindow)
		if err != nil {
			return nil, fmt.Errorf("invalid notify_window '%s': %w", raw.NotifyWindow, err)
		}
		cfg.NotifyWindow = window
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		FontFamily:   c.FontFamily,
		FontSize:     c.FontSize,
		PreviewTTL:   c.PreviewTTL.String(),
		NotifyWindow: c.NotifyWindow.String(),
		LogFile:      c.LogFile,
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.FontFamily == "" {
		return fmt.Errorf("font_family cannot be empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive")
	}
	if c.PreviewTTL < 0 {
		return fmt.Errorf("preview_ttl cannot be negative")
	}
	if c.NotifyWindow < 0 {
		return fmt.Errorf("notify_window cannot be negative")
	}
	return nil
}
