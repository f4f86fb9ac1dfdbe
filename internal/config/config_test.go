package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/golox/internal/config"
)

func TestLoadFallsBackToDefaultsWhenFileIsAbsent(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg := config.Load()
	if cfg.MaxHistory != 1000 {
		t.Fatalf("got MaxHistory %d, want 1000", cfg.MaxHistory)
	}
	if !cfg.Color {
		t.Fatalf("expected Color to default true")
	}
}

func TestLoadReadsFieldsFromLOXCONFIG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("color: false\nmaxHistory: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOX_CONFIG", path)

	cfg := config.Load()
	if cfg.Color {
		t.Fatalf("expected Color to be false")
	}
	if cfg.MaxHistory != 42 {
		t.Fatalf("got MaxHistory %d, want 42", cfg.MaxHistory)
	}
}
