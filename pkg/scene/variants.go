package scene

import (
	"fmt"

	"github.com/glitchlab/wirespin/pkg/anim"
	"github.com/glitchlab/wirespin/pkg/math"
)

// Variant names a built-in scene configuration.
type Variant string

const (
	VariantSpinner   Variant = "spinner"
	VariantBlackHole Variant = "blackhole"
	VariantWarning   Variant = "warning"
)

// Variants lists the built-in scene names in a stable order.
func Variants() []Variant {
	return []Variant{VariantSpinner, VariantBlackHole, VariantWarning}
}

// New builds the named built-in scene.
func New(v Variant) (*Config, error) {
	switch v {
	case VariantSpinner:
		return Spinner()
	case VariantBlackHole:
		return BlackHole()
	case VariantWarning:
		return Warning()
	default:
		return nil, fmt.Errorf("unknown scene variant %q", v)
	}
}

// Spinner is the loading-spinner hypercube: a unit outer cube with explicit
// variable-thickness segments around a half-size inner cube, one eased half
// turn every four seconds.
func Spinner() (*Config, error) {
	clock, err := anim.NewClock(4000,
		anim.Rotation{Axis: math.Vec3{Y: 1}, Turns: 0.5},
		anim.Rotation{Axis: math.Vec3{X: 1, Y: 1}, Turns: 0.25, Shape: anim.ShapeSine},
	)
	if err != nil {
		return nil, err
	}

	edges, err := NewClassifier(DefaultEdgeBuckets())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ID:       string(VariantSpinner),
		Outer:    Cube(1),
		Inner:    Cube(0.5),
		Segments: CubeSegments(1),
		Scale:    100,
		Clock:    clock,
		Stages:   anim.DefaultCubeStages(),
		Edges:    edges,
		Base:     RGB{30, 32, 44},
		Accent:   RGB{64, 214, 255},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BlackHole is the black-hole composite: a small-scale hypercube whose
// outer shell tumbles on an Euler channel while the inner cube counter
// rotates, rendered with a dark violet-to-ember palette.
func BlackHole() (*Config, error) {
	clock, err := anim.NewClock(8000,
		anim.Rotation{Euler: math.Vec3{X: 0.25, Y: 0.5}},
		anim.Rotation{Axis: math.Vec3{Y: 1}, Turns: -0.5, Shape: anim.ShapeSine},
	)
	if err != nil {
		return nil, err
	}

	edges, err := NewClassifier(DefaultEdgeBuckets())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ID:     string(VariantBlackHole),
		Outer:  Cube(1),
		Inner:  Cube(0.8),
		Scale:  16,
		Clock:  clock,
		Stages: anim.DefaultCubeStages(),
		Edges:  edges,
		Base:   RGB{18, 10, 34},
		Accent: RGB{255, 122, 26},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Warning is the alert hypercube: the spinner geometry on a faster loop
// with an amber pulse palette.
func Warning() (*Config, error) {
	clock, err := anim.NewClock(2000,
		anim.Rotation{Axis: math.Vec3{Y: 1}, Turns: 0.5},
		anim.Rotation{Axis: math.Vec3{X: 1, Z: 1}, Turns: 0.25, Shape: anim.ShapeSine},
	)
	if err != nil {
		return nil, err
	}

	edges, err := NewClassifier(DefaultEdgeBuckets())
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ID:       string(VariantWarning),
		Outer:    Cube(1),
		Inner:    Cube(0.5),
		Segments: CubeSegments(1),
		Scale:    100,
		Clock:    clock,
		Stages:   anim.DefaultCubeStages(),
		Edges:    edges,
		Base:     RGB{46, 34, 12},
		Accent:   RGB{255, 184, 0},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
