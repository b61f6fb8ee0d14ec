package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultServer         = "https://hasteb.in"
	DefaultColorTheme     = "auto"
	DefaultHighlightStyle = "monokai"
)

type Config struct {
	// Server used by post when [server] is omitted
	DefaultServer string `yaml:"default_server"`

	// UI Settings
	ColorTheme     string `yaml:"color_theme"`
	HighlightStyle string `yaml:"highlight_style"`

	// Copy the created URL to the clipboard after post
	CopyURL bool `yaml:"copy_url"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultServer:  DefaultServer,
		ColorTheme:     DefaultColorTheme,
		HighlightStyle: DefaultHighlightStyle,
		CopyURL:        false,
	}
}

// DefaultPath returns the config file location.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows
func DefaultPath() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "haste", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "haste-config", "config.yaml"), nil
	}

	// Fall back to ~/.config/haste/config.yaml (Unix-like systems)
	return filepath.Join(homeDir, ".config", "haste", "config.yaml"), nil
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.DefaultServer == "" {
		cfg.DefaultServer = DefaultServer
	}
	if cfg.HighlightStyle == "" {
		cfg.HighlightStyle = DefaultHighlightStyle
	}
	if !isValidColorTheme(cfg.ColorTheme) {
		cfg.ColorTheme = DefaultColorTheme
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func isValidColorTheme(theme string) bool {
	switch theme {
	case "auto", "dark", "light":
		return true
	}
	return false
}
