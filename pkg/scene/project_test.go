package scene

import (
	"testing"

	"github.com/glitchlab/wirespin/pkg/math"
)

func TestProjectKnownPoints(t *testing.T) {
	tests := []struct {
		name  string
		v     math.Vec3
		scale float64
		want  math.Vec2
	}{
		// x and z cancel in both terms except the y drop.
		{"corner", math.Vec3{X: 1, Y: 1, Z: 1}, 100, math.Vec2{X: 0, Y: 0}},
		// Pure y maps straight down by scale.
		{"up", math.Vec3{Y: 1}, 100, math.Vec2{X: 0, Y: -100}},
		{"x axis", math.Vec3{X: 1}, 100, math.Vec2{X: 86.6, Y: 50}},
		{"z axis", math.Vec3{Z: 1}, 100, math.Vec2{X: -86.6, Y: 50}},
		{"origin", math.Vec3{}, 100, math.Vec2{}},
		{"small scale", math.Vec3{X: 1, Y: 1, Z: 1}, 16, math.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.v, tt.scale)
			if !near2(got, tt.want, 1e-12) {
				t.Errorf("Project(%v, %v) = %v, want %v", tt.v, tt.scale, got, tt.want)
			}
		})
	}
}

func TestProjectLinearity(t *testing.T) {
	a := math.Vec3{X: 0.3, Y: -1.2, Z: 2}
	b := math.Vec3{X: -0.7, Y: 0.4, Z: -0.9}

	sum := Project(a.Add(b), 100)
	parts := Project(a, 100).Add(Project(b, 100))

	if !near2(sum, parts, 1e-9) {
		t.Errorf("project(a+b) = %v, project(a)+project(b) = %v", sum, parts)
	}
}

func TestProjectNoTranslationTerm(t *testing.T) {
	// The origin must stay fixed for linearity to hold.
	got := Project(math.Vec3{}, 123)
	if got != (math.Vec2{}) {
		t.Errorf("Project(origin) = %v, want origin", got)
	}
}

func TestProjectScaleProportional(t *testing.T) {
	v := math.Vec3{X: 1, Y: 0.5, Z: -0.25}
	big := Project(v, 100)
	small := Project(v, 16)

	// Scale factors through linearly.
	want := big.Scale(16.0 / 100.0)
	if !near2(small, want, 1e-12) {
		t.Errorf("Project at scale 16 = %v, want %v", small, want)
	}
}

func near2(a, b math.Vec2, tol float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= tol && dy <= tol
}
