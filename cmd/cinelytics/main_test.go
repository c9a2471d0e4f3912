package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath   string
	datasetPath  string
	databasePath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		configPath:   filepath.Join(base, "config.toml"),
		datasetPath:  filepath.Join(base, "movies.json"),
		databasePath: filepath.Join(base, "cinelytics.db"),
	}

	configBody := `
[paths]
dataset = "` + env.datasetPath + `"
database = "` + env.databasePath + `"
log_dir = "` + filepath.Join(base, "logs") + `"

[chart]
enabled = false
`
	if err := os.WriteFile(env.configPath, []byte(configBody), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	dataset := `{"top_movies":[{"title":"A","year":1999,"rating":8.0,"synopsis":"s","director":"D","genre":["Drama","Crime"],"cast":["X","Y"]}]}`
	if err := os.WriteFile(env.datasetPath, []byte(dataset), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	return env
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommandExportsAndSummarizes(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "run", "--config", env.configPath)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Mean Rating by Decade") {
		t.Fatalf("expected aggregate tables in output:\n%s", out)
	}
	if !strings.Contains(out, "Exported 1 movies, 1 directors, 2 genres") {
		t.Fatalf("expected export summary in output:\n%s", out)
	}
	if _, err := os.Stat(env.databasePath); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestRunCommandMissingDatasetFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.Remove(env.datasetPath); err != nil {
		t.Fatalf("remove dataset: %v", err)
	}

	if _, err := runCLI(t, "run", "--config", env.configPath); err == nil {
		t.Fatal("expected run to fail without dataset")
	}
	if _, err := os.Stat(env.databasePath); !os.IsNotExist(err) {
		t.Fatal("expected no database file after load failure")
	}
}

func TestStatsCommandPrintsTables(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "stats", "--config", env.configPath)
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Mean Rating by Decade", "Top Directors", "Top Actors", "1990s", "8.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if _, err := os.Stat(env.databasePath); !os.IsNotExist(err) {
		t.Fatal("stats must not write the database")
	}
}

func TestChartCommandRenders(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "chart", "--config", env.configPath)
	if err != nil {
		t.Fatalf("chart failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Movies by Decade") || !strings.Contains(out, "1990s") {
		t.Fatalf("expected chart in output:\n%s", out)
	}
}

func TestInputFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(t.TempDir(), "other.json")
	body := `{"top_movies":[{"title":"B","year":2004,"rating":7.0,"synopsis":"t","director":"E","genre":["Action"],"cast":["Z"]}]}`
	if err := os.WriteFile(other, []byte(body), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	out, err := runCLI(t, "stats", "--config", env.configPath, "--input", other)
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2000s") || strings.Contains(out, "1990s") {
		t.Fatalf("expected override dataset in output:\n%s", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config: %v", err)
	}

	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("expected overwrite to succeed: %v", err)
	}
}

func TestConfigValidateReportsPaths(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, "config", "validate", "--path", env.configPath)
	if err != nil {
		t.Fatalf("config validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") || !strings.Contains(out, env.datasetPath) {
		t.Fatalf("unexpected validate output:\n%s", out)
	}
}
