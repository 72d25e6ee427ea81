package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jaldh/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FileSeparator != "------------------------------" {
		t.Errorf("expected default file separator, got %q", cfg.FileSeparator)
	}
	if cfg.FunctionSeparator != "------------------------------" {
		t.Errorf("expected default function separator, got %q", cfg.FunctionSeparator)
	}
	if cfg.Header.Author != "Anonymous" {
		t.Errorf("expected Author=Anonymous, got %s", cfg.Header.Author)
	}
	if !cfg.Header.IncludeDate {
		t.Error("expected IncludeDate=true")
	}
	if cfg.Header.DateFormat != "%Y-%m-%d" {
		t.Errorf("expected DateFormat=%%Y-%%m-%%d, got %s", cfg.Header.DateFormat)
	}
	if cfg.Log.FlushThreshold != 1 {
		t.Errorf("expected FlushThreshold=1, got %d", cfg.Log.FlushThreshold)
	}
}

func TestHeaderConfig(t *testing.T) {
	if got, want := DefaultConfig().HeaderConfig(), domain.DefaultHeaderConfig(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
file_separator: "=========="
header:
  author: Peter Jacobi
  include_date: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FileSeparator != "==========" {
		t.Errorf("expected FileSeparator='==========', got %q", cfg.FileSeparator)
	}
	if cfg.Header.Author != "Peter Jacobi" {
		t.Errorf("expected Author='Peter Jacobi', got %q", cfg.Header.Author)
	}
	if cfg.Header.IncludeDate {
		t.Error("expected IncludeDate=false")
	}
	// Unset fields keep their defaults.
	if cfg.FunctionSeparator != "------------------------------" {
		t.Errorf("expected default FunctionSeparator, got %q", cfg.FunctionSeparator)
	}
	if cfg.Header.DateFormat != "%Y-%m-%d" {
		t.Errorf("expected default DateFormat, got %q", cfg.Header.DateFormat)
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "jaldh.toml")

	content := `
language = "python"

[header]
author = "Ada"
date_format = "%d.%m.%Y"

[log]
flush_threshold = 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Language != "python" {
		t.Errorf("expected Language=python, got %s", cfg.Language)
	}
	if cfg.Header.Author != "Ada" {
		t.Errorf("expected Author=Ada, got %s", cfg.Header.Author)
	}
	if cfg.Header.DateFormat != "%d.%m.%Y" {
		t.Errorf("expected DateFormat=%%d.%%m.%%Y, got %s", cfg.Header.DateFormat)
	}
	if !cfg.Header.IncludeDate {
		t.Error("expected IncludeDate to keep its default")
	}
	if cfg.Log.FlushThreshold != 10 {
		t.Errorf("expected FlushThreshold=10, got %d", cfg.Log.FlushThreshold)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("header: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnsureDefault_CreatesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := EnsureDefault(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Header.Author != "Anonymous" {
		t.Errorf("expected Author=Anonymous, got %s", cfg.Header.Author)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.HeaderConfig() != cfg.HeaderConfig() {
		t.Errorf("expected round trip of defaults, got %+v", reloaded.HeaderConfig())
	}
}

func TestEnsureDefault_KeepsExisting(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("header:\n  author: Kept\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := EnsureDefault(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Header.Author != "Kept" {
		t.Errorf("expected Author=Kept, got %s", cfg.Header.Author)
	}
}

func TestEnsureDefault_Unavailable(t *testing.T) {
	tmpDir := t.TempDir()

	tests := map[string]string{
		"missing parent": filepath.Join(tmpDir, "no", "such", "dir", "config.yaml"),
		"directory":      tmpDir,
	}
	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := EnsureDefault(path)
			if !errors.Is(err, domain.ErrConfigUnavailable) {
				t.Errorf("expected ErrConfigUnavailable, got %v", err)
			}
		})
	}
}
