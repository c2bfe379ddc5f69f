package main

import (
	"path/filepath"
	"testing"
)

func TestInitConfig_Defaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())

	if err := initConfig(rootCmd); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestInitConfig_FileAndEnv(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgFile = writeSnapshot(t, dir, "config.yaml", "format: json\ncolor: false\ndurable_writes: false\nlog:\n  level: debug\n  dir: /tmp/outlinectl-logs\n")
	t.Setenv("OUTLINECTL_LOG_LEVEL", "warn")

	if err := initConfig(rootCmd); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if cfg.Format != "json" || cfg.Color || cfg.DurableWrites {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected env to override log level, got %q", cfg.Log.Level)
	}
	if cfg.Log.Dir != "/tmp/outlinectl-logs" {
		t.Errorf("expected log dir from file, got %q", cfg.Log.Dir)
	}
}

func TestInitConfig_DefaultFileLocation(t *testing.T) {
	resetFlags(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeSnapshot(t, mkdirAll(t, filepath.Join(home, ".config", "outlinectl")), "config.yaml", "color: false\n")

	if err := initConfig(rootCmd); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if cfg.Color {
		t.Error("expected color disabled by default config file")
	}
}

func TestInitConfig_Errors(t *testing.T) {
	resetFlags(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	if err := initConfig(rootCmd); err == nil {
		t.Error("expected error for missing --config file")
	}

	resetFlags(t)
	cfgFile = writeSnapshot(t, t.TempDir(), "config.yaml", "format: xml\n")
	if err := initConfig(rootCmd); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestNoColorFlag(t *testing.T) {
	resetFlags(t)
	t.Setenv("HOME", t.TempDir())
	noColor = true

	if err := initConfig(rootCmd); err != nil {
		t.Fatalf("initConfig failed: %v", err)
	}
	if cfg.Color {
		t.Error("--no-color should disable color")
	}
	if got := paint(insertStyle, "x"); got != "x" {
		t.Errorf("expected plain text, got %q", got)
	}
}
