package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize default config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.MATLAB.Binary != "matlab" {
		t.Fatalf("unexpected default matlab binary %q", cfg.MATLAB.Binary)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("expected normalized log dir to be absolute, got %q", cfg.Paths.LogDir)
	}
}

func TestLoadReadsFileAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		"[matlab]",
		`binary = "matlab-batch"`,
		"timeout_seconds = 60",
		"[pipeline]",
		"halt_on_figure_failure = true",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be reported as existing")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolved)
	}
	if cfg.MATLAB.Binary != "matlab-batch" {
		t.Fatalf("unexpected matlab binary %q", cfg.MATLAB.Binary)
	}
	if cfg.MATLAB.TimeoutSeconds != 60 {
		t.Fatalf("unexpected timeout %d", cfg.MATLAB.TimeoutSeconds)
	}
	if !cfg.Pipeline.HaltOnFigureFailure {
		t.Fatal("expected halt_on_figure_failure to be set")
	}
	// Unset sections keep defaults.
	if cfg.Quarto.Binary != "quarto" {
		t.Fatalf("unexpected quarto binary %q", cfg.Quarto.Binary)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config to be reported as absent")
	}
	if cfg.MATLAB.Function != "mason_analysis" {
		t.Fatalf("unexpected default function %q", cfg.MATLAB.Function)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero timeout", func(c *Config) { c.MATLAB.TimeoutSeconds = 0 }},
		{"bad quarto format", func(c *Config) { c.Quarto.Formats = []string{"docx"} }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize: %v", err)
			}
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[matlab]") {
		t.Fatal("sample config missing [matlab] section")
	}
}

func TestEnsureDirectoriesIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.HistoryPath = filepath.Join(dir, "state", "history.db")
	cfg.Paths.OutputBaseDir = filepath.Join(dir, "out")

	for i := 0; i < 2; i++ {
		if err := cfg.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories pass %d: %v", i+1, err)
		}
	}
	for _, want := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryPath), cfg.Paths.OutputBaseDir} {
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q to exist", want)
		}
	}
}
