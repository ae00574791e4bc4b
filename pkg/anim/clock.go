// Package anim turns wall-clock time into the eased, looping progress values
// and rotation matrices that drive the wireframe scenes.
package anim

import (
	"fmt"
	stdmath "math"

	"github.com/glitchlab/wirespin/pkg/math"
)

// Shape selects how a rotation's angle is derived from eased progress.
type Shape int

const (
	// ShapeLinear scales the angle directly by eased progress, so the
	// rotation only rises over a loop.
	ShapeLinear Shape = iota
	// ShapeSine scales the angle by sin(eased * pi/2), so the rotation can
	// rise and fall back within a single loop.
	ShapeSine
)

// Rotation describes one rotation channel derived from the clock. A channel
// either spins about a single axis (Axis/Turns) or composes intrinsic XYZ
// Euler rotations (Euler, in turns per axis); Euler takes precedence when
// any of its components is set.
type Rotation struct {
	Axis  math.Vec3
	Turns float64
	Euler math.Vec3
	Shape Shape
}

func (r Rotation) isEuler() bool {
	return r.Euler != (math.Vec3{})
}

// Clock converts a timestamp in milliseconds into a repeating, eased
// progress value and the rotation matrices derived from it. A Clock is a
// pure function of time: it holds no per-frame state and may be sampled at
// arbitrary, even out-of-order, timestamps.
type Clock struct {
	loopMs float64
	outer  Rotation
	inner  Rotation
}

// NewClock validates the loop duration and rotation channels.
// Rotation axes are normalized here, once.
func NewClock(loopMs float64, outer, inner Rotation) (*Clock, error) {
	if loopMs <= 0 {
		return nil, fmt.Errorf("loop duration must be positive, got %v ms", loopMs)
	}
	if !outer.isEuler() && outer.Axis.Length() == 0 {
		return nil, fmt.Errorf("outer rotation axis is zero")
	}
	if !inner.isEuler() && inner.Axis.Length() == 0 {
		return nil, fmt.Errorf("inner rotation axis is zero")
	}
	outer.Axis = outer.Axis.Normalize()
	inner.Axis = inner.Axis.Normalize()
	return &Clock{loopMs: loopMs, outer: outer, inner: inner}, nil
}

// LoopMs returns the loop duration in milliseconds.
func (c *Clock) LoopMs() float64 { return c.loopMs }

// WithLoop returns a clock with the same rotation channels on a different
// loop duration.
func (c *Clock) WithLoop(loopMs float64) (*Clock, error) {
	return NewClock(loopMs, c.outer, c.inner)
}

// Sample is the per-frame animation state. It is recomputed from scratch on
// every call to At and never persisted.
type Sample struct {
	// Raw is the loop position in [0,1).
	Raw float64
	// Smooth is Raw passed through a sine wave aligned so the value at the
	// wrap boundary is continuous.
	Smooth float64
	// Eased is Smooth with quadratic ease-in-out applied.
	Eased float64
	// Degrees is the nominal rotation in degrees, Eased * 180.
	Degrees float64

	Outer    math.Mat4
	Inner    math.Mat4
	Combined math.Mat4
}

// At samples the clock at a timestamp in milliseconds.
func (c *Clock) At(timestampMs float64) Sample {
	raw := stdmath.Mod(timestampMs, c.loopMs) / c.loopMs
	if raw < 0 {
		raw++
	}

	smooth := (stdmath.Sin(raw*2*stdmath.Pi-stdmath.Pi/2) + 1) / 2
	eased := EaseInOutQuad(smooth)

	outer := c.outer.matrix(eased)
	inner := c.inner.matrix(eased)

	return Sample{
		Raw:      raw,
		Smooth:   smooth,
		Eased:    eased,
		Degrees:  eased * 180,
		Outer:    outer,
		Inner:    inner,
		Combined: outer.Mul(inner),
	}
}

func (r Rotation) matrix(eased float64) math.Mat4 {
	p := eased
	if r.Shape == ShapeSine {
		p = stdmath.Sin(eased * 0.5 * stdmath.Pi)
	}
	if r.isEuler() {
		return math.FromEuler(
			p*r.Euler.X*2*stdmath.Pi,
			p*r.Euler.Y*2*stdmath.Pi,
			p*r.Euler.Z*2*stdmath.Pi,
		)
	}
	return math.RotateAxis(r.Axis, p*r.Turns*2*stdmath.Pi)
}

// EaseInOutQuad is the standard symmetric quadratic ease:
// 2p^2 below the midpoint, 1-2(1-p)^2 above it.
func EaseInOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	return 1 - 2*(1-p)*(1-p)
}
