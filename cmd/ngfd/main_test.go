package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv("NGFD_CONFIG", "")
		if got := getConfigPath(); got != defaultConfigPath {
			t.Errorf("getConfigPath() = %q, want %q", got, defaultConfigPath)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("NGFD_CONFIG", "/opt/ngfd/ngfd.yaml")
		if got := getConfigPath(); got != "/opt/ngfd/ngfd.yaml" {
			t.Errorf("getConfigPath() = %q, want env value", got)
		}
	})
}

// TestRun_ExplicitConfigMustExist verifies run fails when NGFD_CONFIG
// points at a missing file.
func TestRun_ExplicitConfigMustExist(t *testing.T) {
	t.Setenv("NGFD_CONFIG", "/nonexistent/path/ngfd.yaml")

	if err := run(context.Background()); err == nil {
		t.Fatal("run() should fail with an explicit but missing config path")
	}
}

// TestRun_ResolvesSettings runs the full startup path against fixture
// config and settings files.
func TestRun_ResolvesSettings(t *testing.T) {
	tmpDir := t.TempDir()

	settingsPath := filepath.Join(tmpDir, "ngf.ini")
	settingsContent := `
[event ringtone]
audio_enabled = true
max_timeout = 120000
`
	if err := os.WriteFile(settingsPath, []byte(settingsContent), 0600); err != nil {
		t.Fatalf("failed to write settings fixture: %v", err)
	}

	configPath := filepath.Join(tmpDir, "ngfd.yaml")
	configContent := `
logging:
  level: error
settings:
  paths:
    - ` + settingsPath + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	t.Setenv("NGFD_CONFIG", configPath)

	if err := run(context.Background()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

// TestRun_NoSettingsFileIsFatal verifies the one fatal outcome: no
// candidate settings file loads.
func TestRun_NoSettingsFileIsFatal(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "ngfd.yaml")
	configContent := `
settings:
  paths:
    - /nonexistent/ngf.ini
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	t.Setenv("NGFD_CONFIG", configPath)

	if err := run(context.Background()); err == nil {
		t.Fatal("run() should fail when no settings candidate loads")
	}
}
