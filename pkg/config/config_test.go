package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.DefaultServer != "https://hasteb.in" {
		t.Errorf("expected default DefaultServer='https://hasteb.in', got %q", cfg.DefaultServer)
	}

	if cfg.ColorTheme != "auto" {
		t.Errorf("expected default ColorTheme='auto', got %q", cfg.ColorTheme)
	}

	if cfg.HighlightStyle != "monokai" {
		t.Errorf("expected default HighlightStyle='monokai', got %q", cfg.HighlightStyle)
	}

	if cfg.CopyURL {
		t.Error("expected CopyURL to be off by default")
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg.DefaultServer != DefaultServer {
		t.Errorf("expected default server, got %q", cfg.DefaultServer)
	}
}

func TestSave_And_Load(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		DefaultServer:  "https://paste.example.com",
		ColorTheme:     "dark",
		HighlightStyle: "dracula",
		CopyURL:        true,
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", *cfg, *loaded)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantServer string
		wantTheme  string
		wantStyle  string
	}{
		{"empty file", "", DefaultServer, DefaultColorTheme, DefaultHighlightStyle},
		{"empty server", "default_server: \"\"\n", DefaultServer, DefaultColorTheme, DefaultHighlightStyle},
		{"invalid theme", "color_theme: neon\n", DefaultServer, DefaultColorTheme, DefaultHighlightStyle},
		{"partial", "highlight_style: github\n", DefaultServer, DefaultColorTheme, "github"},
		{"custom server", "default_server: http://localhost:7777\n", "http://localhost:7777", DefaultColorTheme, DefaultHighlightStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to create test config file: %v", err)
			}

			cfg, err := Load(configPath)
			if err != nil {
				t.Fatalf("failed to load config: %v", err)
			}

			if cfg.DefaultServer != tt.wantServer {
				t.Errorf("DefaultServer = %q, want %q", cfg.DefaultServer, tt.wantServer)
			}
			if cfg.ColorTheme != tt.wantTheme {
				t.Errorf("ColorTheme = %q, want %q", cfg.ColorTheme, tt.wantTheme)
			}
			if cfg.HighlightStyle != tt.wantStyle {
				t.Errorf("HighlightStyle = %q, want %q", cfg.HighlightStyle, tt.wantStyle)
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("default_server: [unterminated\n"), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		path, err := DefaultPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != filepath.Join("/tmp/xdg", "haste", "config.yaml") {
			t.Errorf("unexpected path %q", path)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("APPDATA", "")
		t.Setenv("HOME", home)

		path, err := DefaultPath()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != filepath.Join(home, ".config", "haste", "config.yaml") {
			t.Errorf("unexpected path %q", path)
		}
	})
}
