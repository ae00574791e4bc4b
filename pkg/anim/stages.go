package anim

import "fmt"

// StageTable staggers per-element transitions against a global progress
// value. Every element waits out BaseDelay plus its own offset, then ramps
// from 0 to 1 over Duration. The offsets are configuration so each geometry
// can define its own reveal order.
type StageTable struct {
	BaseDelay float64
	Duration  float64
	Offsets   []float64
}

// Validate reports configuration errors up front; a bad table is a caller
// bug, not a runtime condition.
func (t StageTable) Validate() error {
	if t.Duration <= 0 {
		return fmt.Errorf("stage duration must be positive, got %v", t.Duration)
	}
	if len(t.Offsets) == 0 {
		return fmt.Errorf("stage table has no offsets")
	}
	if t.BaseDelay < 0 {
		return fmt.Errorf("stage base delay must not be negative, got %v", t.BaseDelay)
	}
	for i, off := range t.Offsets {
		if off < 0 {
			return fmt.Errorf("stage offset %d must not be negative, got %v", i, off)
		}
	}
	return nil
}

// Progress maps a global progress value in [0,1] to element i's own
// progress. Indexes outside the table use a zero offset.
func (t StageTable) Progress(global float64, i int) float64 {
	var offset float64
	if i >= 0 && i < len(t.Offsets) {
		offset = t.Offsets[i]
	}
	p := (global - t.BaseDelay - offset) / t.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Len returns the number of elements the table covers.
func (t StageTable) Len() int { return len(t.Offsets) }

// DefaultCubeStages is the reveal order for a cube's six faces, matching
// the face order produced by scene.Cube: bottom first, the three visible
// side faces together, then the back face, the top face last.
func DefaultCubeStages() StageTable {
	return StageTable{
		BaseDelay: 0.1,
		Duration:  0.3,
		Offsets:   []float64{0, 0.15, 0.15, 0.15, 0.3, 0.45},
	}
}
