package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinelytics/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDataset := filepath.Join(tempHome, ".local", "share", "cinelytics", "movies.json")
	if cfg.Paths.Dataset != wantDataset {
		t.Fatalf("unexpected dataset path: got %q want %q", cfg.Paths.Dataset, wantDataset)
	}
	if !strings.HasSuffix(cfg.Paths.Database, "cinelytics.db") {
		t.Fatalf("unexpected database path: %q", cfg.Paths.Database)
	}
	if cfg.Analytics.TopDirectors != 5 || cfg.Analytics.TopActors != 10 {
		t.Fatalf("unexpected analytics defaults: %+v", cfg.Analytics)
	}
	if !cfg.Chart.Enabled {
		t.Fatal("expected chart enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
dataset = "` + filepath.Join(dir, "movies.json") + `"
database = "` + filepath.Join(dir, "out.db") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[analytics]
top_directors = 3

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Analytics.TopDirectors != 3 {
		t.Fatalf("expected top_directors override, got %d", cfg.Analytics.TopDirectors)
	}
	if cfg.Analytics.TopActors != 10 {
		t.Fatalf("expected top_actors default, got %d", cfg.Analytics.TopActors)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero top directors", "[analytics]\ntop_directors = 0\n"},
		{"narrow chart", "[chart]\nwidth = 2\n"},
		{"bad format", "[logging]\nformat = \"xml\"\n"},
		{"bad level", "[logging]\nlevel = \"loud\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestEnsureDirectoriesCreatesDatabaseParent(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Dataset = filepath.Join(dir, "movies.json")
	cfg.Paths.Database = filepath.Join(dir, "db", "cinelytics.db")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, want := range []string{filepath.Join(dir, "db"), filepath.Join(dir, "logs")} {
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", want, err)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("expected sample config to load: exists=%v err=%v", exists, err)
	}
}
