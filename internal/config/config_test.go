package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"curator/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.YouTube.APIKey != "env-key" {
		t.Fatalf("expected api key from environment, got %q", cfg.YouTube.APIKey)
	}
	if cfg.Quota.DailyBudget != 10000 || cfg.Quota.ConfirmThreshold != 100 {
		t.Fatalf("unexpected quota defaults: %#v", cfg.Quota)
	}
	if cfg.Search.MaxResults != 10 || cfg.Search.PerPatternResults != 15 {
		t.Fatalf("unexpected search defaults: %#v", cfg.Search)
	}
}

func TestLoadParsesFileOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[youtube]
api_key = "file-key"

[quota]
daily_budget = 5000
confirm_threshold = 50

[search]
per_pattern_results = 20
max_results = 5

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.YouTube.APIKey != "file-key" {
		t.Fatalf("expected file api key, got %q", cfg.YouTube.APIKey)
	}
	if cfg.Quota.DailyBudget != 5000 || cfg.Quota.ConfirmThreshold != 50 {
		t.Fatalf("unexpected quota values: %#v", cfg.Quota)
	}
	if cfg.Search.PerPatternResults != 20 || cfg.Search.MaxResults != 5 {
		t.Fatalf("unexpected search values: %#v", cfg.Search)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging values: %#v", cfg.Logging)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !strings.Contains(err.Error(), "youtube.api_key") {
		t.Fatalf("expected api key hint in error, got %v", err)
	}
}

func TestLoadRejectsOversizedPageCap(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[search]
per_pattern_results = 60
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for per_pattern_results above provider cap")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[youtube]") {
		t.Fatal("expected sample to contain youtube section")
	}
}
