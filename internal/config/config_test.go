package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_HasCorrectValues(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("Default() LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.BacktrackVisitCap != DefaultBacktrackVisitCap {
		t.Errorf("Default() BacktrackVisitCap = %d, want %d", cfg.BacktrackVisitCap, DefaultBacktrackVisitCap)
	}
	if cfg.Epsilon != 0 {
		t.Errorf("Default() Epsilon = %v, want 0 (unset)", cfg.Epsilon)
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(missing) = %+v, want Default()", cfg)
	}
}

func TestLoad_OverridesOnlySetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(map[string]any{"log_level": "debug"})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.BacktrackVisitCap != DefaultBacktrackVisitCap {
		t.Errorf("BacktrackVisitCap = %d, want default %d (unset in file)", cfg.BacktrackVisitCap, DefaultBacktrackVisitCap)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with invalid JSON: want error, got nil")
	}
}
