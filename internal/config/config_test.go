package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Table.DefaultRows != 3 {
		t.Errorf("Table.DefaultRows = %d, want 3", cfg.Table.DefaultRows)
	}
	if cfg.Table.DefaultCredits != "3" {
		t.Errorf("Table.DefaultCredits = %q, want 3", cfg.Table.DefaultCredits)
	}
	if cfg.GPA.DisplayPrecision != 2 {
		t.Errorf("GPA.DisplayPrecision = %d, want 2", cfg.GPA.DisplayPrecision)
	}
	if got := cfg.TableTTL(); got != 30*time.Minute {
		t.Errorf("TableTTL = %v, want 30m", got)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
table:
  default_rows: 5
  default_credits: "4"
  ttl: 1h
gpa:
  display_precision: 3
logging:
  level: debug
  format: text
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "9090" || cfg.Server.Mode != "production" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Table.DefaultRows != 5 || cfg.Table.DefaultCredits != "4" {
		t.Errorf("Table = %+v", cfg.Table)
	}
	if got := cfg.TableTTL(); got != time.Hour {
		t.Errorf("TableTTL = %v, want 1h", got)
	}
	if cfg.GPA.DisplayPrecision != 3 {
		t.Errorf("DisplayPrecision = %d, want 3", cfg.GPA.DisplayPrecision)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
gpa:
  display_precision: 3
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GPA_DISPLAY_PRECISION", "4")
	t.Setenv("TABLE_DEFAULT_ROWS", "6")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want env override 7070", cfg.Server.Port)
	}
	if cfg.GPA.DisplayPrecision != 4 {
		t.Errorf("DisplayPrecision = %d, want env override 4", cfg.GPA.DisplayPrecision)
	}
	if cfg.Table.DefaultRows != 6 {
		t.Errorf("DefaultRows = %d, want env override 6", cfg.Table.DefaultRows)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad ttl", yaml: "table:\n  ttl: soon\n"},
		{name: "negative rows", yaml: "table:\n  default_rows: -1\n"},
		{name: "precision out of range", yaml: "gpa:\n  display_precision: 42\n"},
		{name: "not yaml", yaml: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			if _, err := LoadConfig(path); err == nil {
				t.Fatal("LoadConfig succeeded, want error")
			}
		})
	}
}
