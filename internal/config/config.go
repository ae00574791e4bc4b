// Package config handles application configuration loading and management.
package config

import "time"

// Config holds all wirespin settings.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
	Theme     ThemeConfig     `yaml:"theme"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnimationConfig selects the scene and its timing.
type AnimationConfig struct {
	Variant string  `yaml:"variant"`
	LoopMs  float64 `yaml:"loop_ms"` // 0 keeps the variant's own loop duration
	Scale   float64 `yaml:"scale"`   // 0 keeps the variant's own scale
}

// RenderConfig holds output settings for both the SVG writer and the
// preview window.
type RenderConfig struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FPS        int           `yaml:"fps"`
	Frames     int           `yaml:"frames"`
	OutputDir  string        `yaml:"output_dir"`
	ThinWidth  float64       `yaml:"thin_width"`
	ThickWidth float64       `yaml:"thick_width"`
	Preview    bool          `yaml:"preview"`
	Record     time.Duration `yaml:"record"` // >0: capture live frames for this long
}

// ThemeConfig overrides the variant palette. Empty strings keep the
// variant's built-in colors.
type ThemeConfig struct {
	Base   string `yaml:"base"`
	Accent string `yaml:"accent"`
	Stroke string `yaml:"stroke"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			Variant: "spinner",
		},
		Render: RenderConfig{
			Width:      800,
			Height:     600,
			FPS:        30,
			Frames:     120,
			OutputDir:  "frames",
			ThinWidth:  1,
			ThickWidth: 2.5,
			Preview:    false,
		},
		Theme: ThemeConfig{},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
