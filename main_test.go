package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/folio/internal/config"
)

func TestRunWriteConfigSavesEffectiveSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio", "config.toml")

	if err := run([]string{"-config", path, "-write-config", "-theme", "light", "-reduced-motion"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("expected theme light, got %q", cfg.Theme)
	}
	if !cfg.ReducedMotion {
		t.Fatal("expected reduced motion to be saved")
	}
}

func TestRunReturnsErrorsInsteadOfExiting(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "folio.log")
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("log_file = \""+filepath.ToSlash(logPath)+"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	err := run([]string{"-config", cfgPath, filepath.Join(dir, "missing.toml")})
	if err == nil {
		t.Fatal("expected error for a missing document")
	}

	data, readErr := os.ReadFile(logPath)
	if readErr != nil {
		t.Fatalf("read log: %v", readErr)
	}
	if !strings.Contains(string(data), "config loaded from") {
		t.Fatalf("expected log output before the failure, got %q", data)
	}
}

func TestRunRejectsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := run([]string{"-config", path, "-theme", "sepia", "-write-config"})
	if err == nil || !strings.Contains(err.Error(), "invalid theme") {
		t.Fatalf("expected invalid theme error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("expected no config file to be written")
	}
}
