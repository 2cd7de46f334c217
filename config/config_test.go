package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amrul94/InterpreterForMython/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("Load(missing) = %+v, want defaults %+v", cfg, config.Default())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mythonrc.yaml")
	contents := "prompt: \"mython> \"\ntheme: solarized\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prompt != "mython> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "mython> ")
	}
	if cfg.Theme != "solarized" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "solarized")
	}
	if cfg.HistoryFile != config.Default().HistoryFile {
		t.Errorf("HistoryFile = %q, want default %q left untouched", cfg.HistoryFile, config.Default().HistoryFile)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".mythonrc.yaml")
	if err := os.WriteFile(path, []byte("prompt: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
