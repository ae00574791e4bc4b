// Package scene holds the static geometry descriptions and the per-frame
// pipeline that turns a timestamp into 2D draw primitives.
package scene

import (
	"fmt"

	"github.com/glitchlab/wirespin/pkg/math"
)

// Geometry is a static vertex/edge/face description. It is configuration
// data: built once, validated once, never mutated while animating.
type Geometry struct {
	Vertices []math.Vec3
	Edges    [][2]int
	Faces    [][]int
}

// Segment is an explicit line in model space, independent of the indexed
// edge list. The spinner uses these for its variable-thickness outer strokes.
type Segment struct {
	A, B math.Vec3
}

// Validate rejects degenerate or inconsistent geometry. Configuration errors
// surface here, at construction, not mid-animation.
func (g Geometry) Validate() error {
	if len(g.Vertices) == 0 {
		return fmt.Errorf("geometry has no vertices")
	}
	if len(g.Edges) == 0 {
		return fmt.Errorf("geometry has no edges")
	}
	if len(g.Faces) == 0 {
		return fmt.Errorf("geometry has no faces")
	}
	for i, e := range g.Edges {
		if e[0] < 0 || e[0] >= len(g.Vertices) || e[1] < 0 || e[1] >= len(g.Vertices) {
			return fmt.Errorf("edge %d references vertex out of range: %v", i, e)
		}
	}
	for i, f := range g.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices, need at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(g.Vertices) {
				return fmt.Errorf("face %d references vertex %d out of range", i, idx)
			}
		}
	}
	return nil
}

// Cube returns the standard cube with vertices at +-half.
//
// Vertex order: back ring first (z = -half), then front ring (z = +half),
// counter-clockwise from the bottom-left corner. Edges 0-3 are the back
// ring, 4-7 the front ring, 8-11 the connectors. Faces are listed in
// reveal order: bottom, the three near sides, back, top — the order the
// default stage table indexes.
func Cube(half float64) Geometry {
	h := half
	return Geometry{
		Vertices: []math.Vec3{
			{X: -h, Y: -h, Z: -h},
			{X: h, Y: -h, Z: -h},
			{X: h, Y: h, Z: -h},
			{X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h},
			{X: h, Y: -h, Z: h},
			{X: h, Y: h, Z: h},
			{X: -h, Y: h, Z: h},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
		Faces: [][]int{
			{0, 1, 5, 4}, // bottom
			{0, 3, 7, 4}, // left
			{1, 2, 6, 5}, // right
			{4, 5, 6, 7}, // front
			{0, 1, 2, 3}, // back
			{3, 2, 6, 7}, // top
		},
	}
}

// CubeSegments returns the cube's 12 edges as explicit segments, in the
// same order as the indexed edge list.
func CubeSegments(half float64) []Segment {
	g := Cube(half)
	segs := make([]Segment, len(g.Edges))
	for i, e := range g.Edges {
		segs[i] = Segment{A: g.Vertices[e[0]], B: g.Vertices[e[1]]}
	}
	return segs
}
