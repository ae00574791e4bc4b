// Package main is the entry point for the wirespin renderer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/glitchlab/wirespin/internal/config"
	"github.com/glitchlab/wirespin/internal/display"
	"github.com/glitchlab/wirespin/internal/logger"
	"github.com/glitchlab/wirespin/internal/runner"
	"github.com/glitchlab/wirespin/internal/svg"
	"github.com/glitchlab/wirespin/pkg/scene"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== wirespin ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Render.FPS <= 0 || cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		logger.Error("render settings need positive fps, width and height",
			zap.Int("fps", cfg.Render.FPS),
			zap.Int("width", cfg.Render.Width),
			zap.Int("height", cfg.Render.Height),
		)
		os.Exit(1)
	}

	sc, style, err := buildScene(cfg)
	if err != nil {
		logger.Error("failed to build scene", zap.Error(err))
		os.Exit(1)
	}

	switch {
	case cfg.Render.Preview:
		err = runPreview(cfg, sc, style)
	case cfg.Render.Record > 0:
		err = recordLive(cfg, sc, style)
	default:
		err = writeSequence(cfg, sc, style)
	}
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("done")
}

// buildScene turns the file/flag configuration into a validated scene
// config plus stroke styling.
func buildScene(cfg *config.Config) (*scene.Config, scene.Style, error) {
	sc, err := scene.New(scene.Variant(cfg.Animation.Variant))
	if err != nil {
		return nil, scene.Style{}, err
	}

	if cfg.Animation.Scale > 0 {
		sc.Scale = cfg.Animation.Scale
	}
	if cfg.Animation.LoopMs > 0 {
		clock, err := sc.Clock.WithLoop(cfg.Animation.LoopMs)
		if err != nil {
			return nil, scene.Style{}, err
		}
		sc.Clock = clock
	}

	if cfg.Theme.Base != "" {
		if sc.Base, err = scene.ParseHex(cfg.Theme.Base); err != nil {
			return nil, scene.Style{}, fmt.Errorf("theme base: %w", err)
		}
	}
	if cfg.Theme.Accent != "" {
		if sc.Accent, err = scene.ParseHex(cfg.Theme.Accent); err != nil {
			return nil, scene.Style{}, fmt.Errorf("theme accent: %w", err)
		}
	}

	style := scene.DefaultStyle()
	if cfg.Render.ThinWidth > 0 {
		style.Thin = cfg.Render.ThinWidth
	}
	if cfg.Render.ThickWidth > 0 {
		style.Thick = cfg.Render.ThickWidth
	}
	if cfg.Theme.Stroke != "" {
		if style.Stroke, err = scene.ParseHex(cfg.Theme.Stroke); err != nil {
			return nil, scene.Style{}, fmt.Errorf("theme stroke: %w", err)
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, scene.Style{}, err
	}
	return sc, style, nil
}

// writeSequence renders a fixed-step frame sequence to SVG files.
func writeSequence(cfg *config.Config, sc *scene.Config, style scene.Style) error {
	if err := os.MkdirAll(cfg.Render.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	stepMs := 1000.0 / float64(cfg.Render.FPS)
	canvas := svg.New(float64(cfg.Render.Width), float64(cfg.Render.Height))

	logger.Info("writing frame sequence",
		zap.String("variant", sc.ID),
		zap.Int("frames", cfg.Render.Frames),
		zap.Int("fps", cfg.Render.FPS),
		zap.String("dir", cfg.Render.OutputDir),
	)

	for i := 0; i < cfg.Render.Frames; i++ {
		canvas.Reset()
		frame := scene.ComputeFrame(float64(i)*stepMs, sc)
		frame.Render(canvas, style)

		path := filepath.Join(cfg.Render.OutputDir, fmt.Sprintf("frame_%04d.svg", i))
		if err := writeCanvas(canvas, path); err != nil {
			return err
		}
	}
	return nil
}

// recordLive captures frames from a real-time runner for the configured
// duration, then cancels it.
func recordLive(cfg *config.Config, sc *scene.Config, style scene.Style) error {
	if err := os.MkdirAll(cfg.Render.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	interval := time.Second / time.Duration(cfg.Render.FPS)
	canvas := svg.New(float64(cfg.Render.Width), float64(cfg.Render.Height))

	n := 0
	r, err := runner.New(sc, interval, func(f scene.Frame) error {
		canvas.Reset()
		f.Render(canvas, style)
		path := filepath.Join(cfg.Render.OutputDir, fmt.Sprintf("%s_%04d.svg", f.ID, n))
		n++
		return writeCanvas(canvas, path)
	})
	if err != nil {
		return err
	}

	logger.Info("recording live frames",
		zap.Duration("for", cfg.Render.Record),
		zap.Duration("interval", interval),
	)

	r.Start()
	time.Sleep(cfg.Render.Record)
	r.Stop()

	logger.Sugar.Infof("recorded %d frames", n)
	return nil
}

// runPreview opens the SDL2 window and animates until closed.
func runPreview(cfg *config.Config, sc *scene.Config, style scene.Style) error {
	win, err := display.New(display.Config{
		Title:  "wirespin - " + sc.ID,
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	background := scene.RGB{R: 10, G: 10, B: 14}
	start := time.Now()

	for !win.PollQuit() {
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)
		frame := scene.ComputeFrame(elapsed, sc)

		win.Clear(background)
		frame.Render(win, style)
		win.Present()
	}
	return nil
}

func writeCanvas(canvas *svg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
