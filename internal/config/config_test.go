package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	// Run from an empty directory so a developer's .env is not picked up.
	// Go 1.21-compatible equivalent of t.Chdir(t.TempDir()).
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{"DEFAULT_LOCALE", "LOCALE_DIR", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.LocaleDir != "" {
		t.Errorf("LocaleDir = %q", cfg.LocaleDir)
	}
	if cfg.Level() != logrus.InfoLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	setEnv(t, map[string]string{
		"DEFAULT_LOCALE": "FR",
		"LOCALE_DIR":     dir,
		"LOG_LEVEL":      "debug",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "fr" {
		t.Errorf("DefaultLocale = %q, want canonical fr", cfg.DefaultLocale)
	}
	if cfg.LocaleDir != dir {
		t.Errorf("LocaleDir = %q", cfg.LocaleDir)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level() = %v", cfg.Level())
	}
}

func TestLoadDotEnv(t *testing.T) {
	setEnv(t, nil)
	if err := os.WriteFile(".env", []byte("DEFAULT_LOCALE=fr\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("DEFAULT_LOCALE") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLocale != "fr" {
		t.Errorf("DefaultLocale = %q, want value from .env", cfg.DefaultLocale)
	}
}

func TestLoadInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad locale", map[string]string{"DEFAULT_LOCALE": "???"}},
		{"blank locale", map[string]string{"DEFAULT_LOCALE": "  "}},
		{"missing dir", map[string]string{"LOCALE_DIR": filepath.Join(t.TempDir(), "nope")}},
		{"dir is file", map[string]string{"LOCALE_DIR": file}},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}
