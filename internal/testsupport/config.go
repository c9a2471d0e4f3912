package testsupport

import (
	"path/filepath"
	"testing"

	"cinelytics/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Dataset = filepath.Join(base, "movies.json")
	cfg.Paths.Database = filepath.Join(base, "cinelytics.db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Chart.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithDataset overrides the dataset path on the test config.
func WithDataset(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.Dataset = path
	}
}

// WithChart enables chart rendering on the test config.
func WithChart() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Chart.Enabled = true
	}
}
