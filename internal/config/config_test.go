package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("dimensions should be positive")
	}
	if cfg.CPU.Max != DefaultCPUAxisMax {
		t.Errorf("expected fixed cpu axis max %f, got %f", DefaultCPUAxisMax, cfg.CPU.Max)
	}
	if cfg.GPU.Max != 0 {
		t.Error("gpu axis should default to auto-fit")
	}
	if cfg.CPU.Color != "#0000FF" || cfg.GPU.Color != "#74B71B" {
		t.Errorf("unexpected default colors: %s, %s", cfg.CPU.Color, cfg.GPU.Color)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")

	cfg := DefaultConfig()
	cfg.Width = 1280
	cfg.GPU.Max = 1e7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Width != 1280 {
		t.Errorf("expected width 1280, got %d", loaded.Width)
	}
	if loaded.GPU.Max != 1e7 {
		t.Errorf("expected gpu max 1e7, got %f", loaded.GPU.Max)
	}
	if loaded.Title != cfg.Title {
		t.Errorf("title not round-tripped: %s", loaded.Title)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte("width: 800\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Width)
	}
	if cfg.Height != DefaultHeight {
		t.Errorf("expected default height, got %d", cfg.Height)
	}
	if cfg.CPU.Max != DefaultCPUAxisMax {
		t.Error("unset cpu axis max should keep default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/chart.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
