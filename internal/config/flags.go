package config

import (
	"flag"
)

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagVariant = flag.String("variant", "", "Scene variant (spinner, blackhole, warning)")
	flagLoopMs  = flag.Float64("loop", 0, "Loop duration override in milliseconds")
	flagFrames  = flag.Int("frames", 0, "Number of frames to write")
	flagFPS     = flag.Int("fps", 0, "Frames per second")
	flagOut     = flag.String("out", "", "Output directory for SVG frames")
	flagPreview = flag.Bool("preview", false, "Open a live preview window instead of writing frames")
	flagRecord  = flag.Duration("record", 0, "Capture live frames for the given duration (e.g. 5s)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVariant != "" {
		cfg.Animation.Variant = *flagVariant
	}
	if *flagLoopMs > 0 {
		cfg.Animation.LoopMs = *flagLoopMs
	}
	if *flagFrames > 0 {
		cfg.Render.Frames = *flagFrames
	}
	if *flagFPS > 0 {
		cfg.Render.FPS = *flagFPS
	}
	if *flagOut != "" {
		cfg.Render.OutputDir = *flagOut
	}
	if *flagPreview {
		cfg.Render.Preview = true
	}
	if *flagRecord > 0 {
		cfg.Render.Record = *flagRecord
	}
}
