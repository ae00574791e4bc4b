// Package runner drives an animation instance: a recurring tick that
// computes a frame and hands it to the host, with clean cancellation.
package runner

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/glitchlab/wirespin/internal/logger"
	"github.com/glitchlab/wirespin/pkg/scene"
)

// EmitFunc receives each computed frame. Returning an error stops the
// runner.
type EmitFunc func(scene.Frame) error

// Runner owns one animation timeline. Runners share no state: several can
// run side by side, each with its own config, clock parameters and sink,
// told apart only by the config's ID.
type Runner struct {
	cfg      *scene.Config
	interval time.Duration
	emit     EmitFunc

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// New validates the scene config and prepares a runner ticking at the
// given interval.
func New(cfg *scene.Config, interval time.Duration, emit EmitFunc) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", interval)
	}
	if emit == nil {
		return nil, fmt.Errorf("emit function is nil")
	}
	return &Runner{
		cfg:      cfg,
		interval: interval,
		emit:     emit,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start launches the tick loop. Starting twice is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	logger.Info("runner started",
		zap.String("instance", r.cfg.ID),
		zap.Duration("interval", r.interval),
	)
	go r.loop()
}

// Stop cancels the loop. When Stop returns no further frames will be
// emitted. Safe to call more than once and before Start.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.started {
		r.started = true
		close(r.stop)
		close(r.done)
		r.mu.Unlock()
		return
	}
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}
	r.mu.Unlock()

	<-r.done
	logger.Info("runner stopped", zap.String("instance", r.cfg.ID))
}

func (r *Runner) loop() {
	defer close(r.done)

	start := time.Now()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			elapsed := float64(time.Since(start)) / float64(time.Millisecond)
			frame := scene.ComputeFrame(elapsed, r.cfg)
			if err := r.emit(frame); err != nil {
				logger.Error("frame sink failed, stopping",
					zap.String("instance", r.cfg.ID),
					zap.Error(err),
				)
				return
			}
		}
	}
}
