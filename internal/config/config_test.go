package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Map.Width != 64 || cfg.Map.Height != 64 {
		t.Errorf("expected 64x64 default map, got %dx%d", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Map.FillPercent != 45 {
		t.Errorf("expected fill percent 45, got %d", cfg.Map.FillPercent)
	}
	if !cfg.Map.BorderWalls {
		t.Error("expected border walls on by default")
	}

	if cfg.Mesh.CellSize != 1.0 {
		t.Errorf("expected cell size 1.0, got %f", cfg.Mesh.CellSize)
	}
	if cfg.Mesh.WallHeight != 5.0 {
		t.Errorf("expected wall height 5.0, got %f", cfg.Mesh.WallHeight)
	}

	if cfg.Viewer.Width != 1280 || cfg.Viewer.Height != 720 {
		t.Errorf("expected 1280x720 viewer, got %dx%d", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync on by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
map:
  width: 128
  height: 96
  fill_percent: 50
  seed: 77

mesh:
  cell_size: 2.5
  wall_height: 8

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Map.Width != 128 || cfg.Map.Height != 96 {
		t.Errorf("expected 128x96 map, got %dx%d", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Map.Seed != 77 {
		t.Errorf("expected seed 77, got %d", cfg.Map.Seed)
	}
	if cfg.Mesh.CellSize != 2.5 {
		t.Errorf("expected cell size 2.5, got %f", cfg.Mesh.CellSize)
	}
	if cfg.Mesh.WallHeight != 8 {
		t.Errorf("expected wall height 8, got %f", cfg.Mesh.WallHeight)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Untouched sections keep their defaults
	if cfg.Map.FillPercent != 50 {
		t.Errorf("expected fill percent 50, got %d", cfg.Map.FillPercent)
	}
	if cfg.Viewer.Width != 1280 {
		t.Errorf("viewer width lost its default: %d", cfg.Viewer.Width)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Map.Seed = 1234
	cfg.Mesh.WallHeight = 12

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Map.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", loaded.Map.Seed)
	}
	if loaded.Mesh.WallHeight != 12 {
		t.Errorf("expected wall height 12, got %f", loaded.Mesh.WallHeight)
	}
}
