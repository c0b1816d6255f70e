package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/smartdirs/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".smartdirs.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timezone != "" {
		t.Errorf("Expected empty timezone, got %q", cfg.Timezone)
	}
	if cfg.TimeFormatWithSeconds {
		t.Error("Expected time_format_with_seconds to default to false")
	}
	if cfg.LogDir != "" {
		t.Errorf("Expected empty log_dir, got %q", cfg.LogDir)
	}
}

func TestLoadFullSection(t *testing.T) {
	path := writeConfig(t, `[smartdirs]
timezone = "America/New_York"
time_format_with_seconds = true
log_dir = "~/logs"
ignore = [".git", "node_modules"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timezone != "America/New_York" {
		t.Errorf("Expected timezone America/New_York, got %q", cfg.Timezone)
	}
	if !cfg.TimeFormatWithSeconds {
		t.Error("Expected time_format_with_seconds true")
	}
	if cfg.LogDir != "~/logs" {
		t.Errorf("Expected log_dir ~/logs, got %q", cfg.LogDir)
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[0] != ".git" {
		t.Errorf("Expected ignore patterns, got %v", cfg.Ignore)
	}
}

func TestLoadMissingSectionReturnsDefaults(t *testing.T) {
	path := writeConfig(t, `[other_tool]
timezone = "Europe/Paris"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timezone != "" {
		t.Errorf("Expected empty timezone, got %q", cfg.Timezone)
	}
}

func TestLoadPartialSectionKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `[smartdirs]
timezone = "UTC"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone UTC, got %q", cfg.Timezone)
	}
	if cfg.TimeFormatWithSeconds {
		t.Error("Expected time_format_with_seconds to default to false")
	}
}

func TestLoadMalformedBoolean(t *testing.T) {
	path := writeConfig(t, `[smartdirs]
time_format_with_seconds = "yes"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for malformed boolean")
	}
	if !domain.HasCode(err, domain.ErrCodeConfigError) {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `[smartdirs]
timezone = "UTC"
log_dir = "/from/file"
`)
	t.Setenv("SMARTDIRS_TIMEZONE", "Asia/Tokyo")
	t.Setenv("SMARTDIRS_LOG_DIR", "/from/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Timezone != "Asia/Tokyo" {
		t.Errorf("Expected env timezone to win, got %q", cfg.Timezone)
	}
	if cfg.LogDir != "/from/env" {
		t.Errorf("Expected env log_dir to win, got %q", cfg.LogDir)
	}
}

func TestLoadEnvBoolean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")
	t.Setenv("SMARTDIRS_TIME_FORMAT_WITH_SECONDS", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.TimeFormatWithSeconds {
		t.Error("Expected env boolean override to apply")
	}
}

func TestLoadEnvMalformedBoolean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")
	t.Setenv("SMARTDIRS_TIME_FORMAT_WITH_SECONDS", "definitely")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for malformed boolean env value")
	}
	if !domain.HasCode(err, domain.ErrCodeConfigError) {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}
