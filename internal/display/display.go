// Package display is an optional SDL2 preview host: a window whose renderer
// implements the scene drawing surface.
package display

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/glitchlab/wirespin/internal/logger"
	"github.com/glitchlab/wirespin/pkg/math"
	"github.com/glitchlab/wirespin/pkg/scene"
)

func init() {
	// SDL rendering must stay on the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps the SDL2 window and 2D renderer. It implements
// scene.Surface with the origin translated to the window center, matching
// the projection's coordinate space.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
}

// New creates the preview window.
func New(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	ren, err := sdl.CreateRenderer(win, -1, flags)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Sugar.Infow("preview window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"vsync", cfg.VSync,
	)

	return &Window{config: cfg, sdlWindow: win, renderer: ren}, nil
}

// Clear fills the window with the background color.
func (w *Window) Clear(bg scene.RGB) {
	w.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	w.renderer.Clear()
}

// Line draws a stroke of the given width through the gfx renderer.
func (w *Window) Line(a, b math.Vec2, width float64, c scene.RGB) {
	col := sdl.Color{R: c.R, G: c.G, B: c.B, A: 255}
	x1, y1 := w.toScreen(a)
	x2, y2 := w.toScreen(b)
	gfx.ThickLineColor(w.renderer, x1, y1, x2, y2, int32(width+0.5), col)
}

// Polygon draws a filled closed path through the gfx renderer.
func (w *Window) Polygon(pts []math.Vec2, fill scene.RGB) {
	vx := make([]int16, len(pts))
	vy := make([]int16, len(pts))
	for i, p := range pts {
		x, y := w.toScreen(p)
		vx[i] = int16(x)
		vy[i] = int16(y)
	}
	col := sdl.Color{R: fill.R, G: fill.G, B: fill.B, A: 255}
	gfx.FilledPolygonColor(w.renderer, vx, vy, col)
}

// Present flips the back buffer.
func (w *Window) Present() {
	w.renderer.Present()
}

// PollQuit drains pending events and reports whether the user asked to
// close the window.
func (w *Window) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
		}
	}
	return false
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	logger.Info("closing preview window")
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

func (w *Window) toScreen(p math.Vec2) (int32, int32) {
	return int32(p.X + float64(w.config.Width)/2), int32(p.Y + float64(w.config.Height)/2)
}
