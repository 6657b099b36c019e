package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"width": 320, "height": 200, "format": "webp", "workers": 3}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Resolve(Flags{Height: 240, Output: "x.tga", Format: "tga"})

	want := Config{
		Width:     320,
		Height:    240,
		Output:    "x.tga",
		OutputDir: "renders",
		Workers:   3,
		Format:    "tga",
		Scale:     1,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	want := Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Output:    DefaultOutput,
		OutputDir: "renders",
		Workers:   runtime.NumCPU(),
		Format:    DefaultFormat,
		Scale:     1,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("Load of invalid JSON succeeded")
	}
}
