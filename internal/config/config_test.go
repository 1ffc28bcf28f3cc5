package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quartzweave/ringforge/internal/geom"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Ring.Preset != "circle" {
		t.Errorf("expected preset 'circle', got %s", cfg.Ring.Preset)
	}
	if cfg.Ring.Params() != geom.DefaultParams() {
		t.Errorf("ring defaults diverge from generator defaults: %+v", cfg.Ring.Params())
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

ring:
  preset: "star"
  radial_segments: 128
  twist_degrees: 90
  profile_scale: 0.4
  taper: -0.3
  ring_radius: 2.0
  thickness: 1.2
  arc_degrees: 270
  scale_variance: 0.25
  scale_frequency: 3
  tilt_variance: 10
  tilt_frequency: 2

logging:
  level: "debug"
  log_file: "editor.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Ring.Preset != "star" {
		t.Errorf("expected preset 'star', got %s", cfg.Ring.Preset)
	}
	p := cfg.Ring.Params()
	if p.RadialSegments != 128 {
		t.Errorf("expected 128 radial segments, got %d", p.RadialSegments)
	}
	if p.TwistDegrees != 90 {
		t.Errorf("expected twist 90, got %f", p.TwistDegrees)
	}
	if p.ArcDegrees != 270 {
		t.Errorf("expected arc 270, got %f", p.ArcDegrees)
	}
	if p.TiltVariance != 10 {
		t.Errorf("expected tilt variance 10, got %f", p.TiltVariance)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "editor.log" {
		t.Errorf("expected log file 'editor.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Ring.Preset = "diamond"
	cfg.Ring.TwistDegrees = 45

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Ring.Preset != "diamond" {
		t.Errorf("expected preset 'diamond', got %s", loaded.Ring.Preset)
	}
	if loaded.Ring.TwistDegrees != 45 {
		t.Errorf("expected twist 45, got %f", loaded.Ring.TwistDegrees)
	}
}
