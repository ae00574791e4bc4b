package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Animation.Variant != "spinner" {
		t.Errorf("expected variant 'spinner', got %s", cfg.Animation.Variant)
	}
	if cfg.Animation.LoopMs != 0 {
		t.Errorf("expected loop_ms 0 (variant default), got %v", cfg.Animation.LoopMs)
	}

	if cfg.Render.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 600 {
		t.Errorf("expected height 600, got %d", cfg.Render.Height)
	}
	if cfg.Render.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.Render.FPS)
	}
	if cfg.Render.Frames != 120 {
		t.Errorf("expected frames 120, got %d", cfg.Render.Frames)
	}
	if cfg.Render.OutputDir != "frames" {
		t.Errorf("expected output dir 'frames', got %s", cfg.Render.OutputDir)
	}
	if cfg.Render.ThinWidth != 1 || cfg.Render.ThickWidth != 2.5 {
		t.Errorf("expected stroke widths 1/2.5, got %v/%v", cfg.Render.ThinWidth, cfg.Render.ThickWidth)
	}
	if cfg.Render.Preview {
		t.Error("expected preview to be false by default")
	}

	if cfg.Theme.Base != "" || cfg.Theme.Accent != "" {
		t.Error("expected empty theme overrides by default")
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
	configPath := filepath.Join(tmpDir, "wirespin.yaml")

	yamlContent := `
animation:
  variant: blackhole
  loop_ms: 6000
  scale: 24

render:
  width: 1024
  height: 768
  fps: 60
  frames: 300
  output_dir: out
  thin_width: 0.5
  thick_width: 3

theme:
  base: "#101018"
  accent: "#ff7a1a"
  stroke: "#e6e6eb"

logging:
  level: debug
  log_file: wirespin.log
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Animation.Variant != "blackhole" {
		t.Errorf("expected variant 'blackhole', got %s", cfg.Animation.Variant)
	}
	if cfg.Animation.LoopMs != 6000 {
		t.Errorf("expected loop_ms 6000, got %v", cfg.Animation.LoopMs)
	}
	if cfg.Animation.Scale != 24 {
		t.Errorf("expected scale 24, got %v", cfg.Animation.Scale)
	}

	if cfg.Render.Width != 1024 || cfg.Render.Height != 768 {
		t.Errorf("expected 1024x768, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Render.FPS)
	}
	if cfg.Render.OutputDir != "out" {
		t.Errorf("expected output dir 'out', got %s", cfg.Render.OutputDir)
	}

	if cfg.Theme.Accent != "#ff7a1a" {
		t.Errorf("expected accent '#ff7a1a', got %s", cfg.Theme.Accent)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "wirespin.log" {
		t.Errorf("expected log file 'wirespin.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
render:
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
	if err := loadFromFile(cfg, "/nonexistent/path/wirespin.yaml"); err == nil {
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

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "variant flag",
			setup: func() {
				*flagVariant = "warning"
			},
			verify: func(cfg *Config) {
				if cfg.Animation.Variant != "warning" {
					t.Errorf("expected variant 'warning', got %s", cfg.Animation.Variant)
				}
			},
			teardown: func() {
				*flagVariant = ""
			},
		},
		{
			name: "frames and fps flags",
			setup: func() {
				*flagFrames = 240
				*flagFPS = 60
			},
			verify: func(cfg *Config) {
				if cfg.Render.Frames != 240 {
					t.Errorf("expected frames 240, got %d", cfg.Render.Frames)
				}
				if cfg.Render.FPS != 60 {
					t.Errorf("expected fps 60, got %d", cfg.Render.FPS)
				}
			},
			teardown: func() {
				*flagFrames = 0
				*flagFPS = 0
			},
		},
		{
			name: "preview flag",
			setup: func() {
				*flagPreview = true
			},
			verify: func(cfg *Config) {
				if !cfg.Render.Preview {
					t.Error("expected preview to be true")
				}
			},
			teardown: func() {
				*flagPreview = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wirespin.yaml")

	yamlContent := `
render:
  frames: 90
  fps: 24
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFrames = 600
	defer func() {
		*flagConfig = ""
		*flagFrames = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Frames comes from the flag, fps from the file.
	if cfg.Render.Frames != 600 {
		t.Errorf("expected frames 600 from flag, got %d", cfg.Render.Frames)
	}
	if cfg.Render.FPS != 24 {
		t.Errorf("expected fps 24 from file, got %d", cfg.Render.FPS)
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "wirespin.yaml")

	cfg := Default()
	cfg.Animation.Variant = "blackhole"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Animation.Variant != "blackhole" {
		t.Errorf("expected round-tripped variant 'blackhole', got %s", loaded.Animation.Variant)
	}
}
