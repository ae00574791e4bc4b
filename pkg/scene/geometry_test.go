package scene

import (
	"testing"

	"github.com/glitchlab/wirespin/pkg/math"
)

func TestCubeShape(t *testing.T) {
	g := Cube(1)

	if len(g.Vertices) != 8 {
		t.Errorf("cube has %d vertices, want 8", len(g.Vertices))
	}
	if len(g.Edges) != 12 {
		t.Errorf("cube has %d edges, want 12", len(g.Edges))
	}
	if len(g.Faces) != 6 {
		t.Errorf("cube has %d faces, want 6", len(g.Faces))
	}

	for i, v := range g.Vertices {
		if abs64(v.X) != 1 || abs64(v.Y) != 1 || abs64(v.Z) != 1 {
			t.Errorf("vertex %d = %v, want all components at +-1", i, v)
		}
	}

	for i, f := range g.Faces {
		if len(f) != 4 {
			t.Errorf("face %d has %d vertices, want 4", i, len(f))
		}
	}

	if err := g.Validate(); err != nil {
		t.Errorf("Cube(1).Validate() = %v", err)
	}
}

func TestCubeHalf(t *testing.T) {
	g := Cube(0.5)
	for i, v := range g.Vertices {
		if abs64(v.X) != 0.5 || abs64(v.Y) != 0.5 || abs64(v.Z) != 0.5 {
			t.Errorf("vertex %d = %v, want all components at +-0.5", i, v)
		}
	}
}

func TestCubeEdgeDegree(t *testing.T) {
	// Standard cube topology: every vertex meets exactly three edges.
	g := Cube(1)
	degree := make(map[int]int)
	for _, e := range g.Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v := 0; v < 8; v++ {
		if degree[v] != 3 {
			t.Errorf("vertex %d has degree %d, want 3", v, degree[v])
		}
	}
}

func TestCubeFaceOrder(t *testing.T) {
	// The default stage table depends on face order: bottom first, top last.
	g := Cube(1)

	for _, idx := range g.Faces[0] {
		if g.Vertices[idx].Y != -1 {
			t.Errorf("face 0 should be the bottom face, vertex %d has y=%v", idx, g.Vertices[idx].Y)
		}
	}
	for _, idx := range g.Faces[5] {
		if g.Vertices[idx].Y != 1 {
			t.Errorf("face 5 should be the top face, vertex %d has y=%v", idx, g.Vertices[idx].Y)
		}
	}
}

func TestCubeSegmentsMatchEdges(t *testing.T) {
	g := Cube(1)
	segs := CubeSegments(1)

	if len(segs) != len(g.Edges) {
		t.Fatalf("got %d segments, want %d", len(segs), len(g.Edges))
	}
	for i, e := range g.Edges {
		if segs[i].A != g.Vertices[e[0]] || segs[i].B != g.Vertices[e[1]] {
			t.Errorf("segment %d does not match edge %d", i, i)
		}
	}
}

func TestGeometryValidate(t *testing.T) {
	valid := Cube(1)

	tests := []struct {
		name   string
		mutate func(*Geometry)
	}{
		{"no vertices", func(g *Geometry) { g.Vertices = nil }},
		{"no edges", func(g *Geometry) { g.Edges = nil }},
		{"no faces", func(g *Geometry) { g.Faces = nil }},
		{"edge out of range", func(g *Geometry) { g.Edges = append(g.Edges, [2]int{0, 8}) }},
		{"negative edge index", func(g *Geometry) { g.Edges = append(g.Edges, [2]int{-1, 0}) }},
		{"degenerate face", func(g *Geometry) { g.Faces = append(g.Faces, []int{0, 1}) }},
		{"face out of range", func(g *Geometry) { g.Faces = append(g.Faces, []int{0, 1, 99}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Geometry{
				Vertices: append([]math.Vec3(nil), valid.Vertices...),
				Edges:    append([][2]int(nil), valid.Edges...),
				Faces:    append([][]int(nil), valid.Faces...),
			}
			tt.mutate(&g)
			if err := g.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
