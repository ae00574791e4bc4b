package scene

import "github.com/glitchlab/wirespin/pkg/math"

// Project maps a 3D point to screen space using the fixed oblique
// projection shared by all scenes:
//
//	x' = (x*scale - z*scale) * 0.866
//	y' = (x*scale + z*scale) * 0.5 - y*scale
//
// It is linear and stateless; there is no perspective division, and the
// flattened look that produces is intentional.
func Project(v math.Vec3, scale float64) math.Vec2 {
	return math.Vec2{
		X: (v.X*scale - v.Z*scale) * 0.866,
		Y: (v.X*scale+v.Z*scale)*0.5 - v.Y*scale,
	}
}
