package scene

import (
	"fmt"
	stdmath "math"
)

// EdgeClass is the discrete stroke category of an edge at a given rotation.
type EdgeClass int

const (
	// EdgeThick is the default class for any edge no bucket marks thin.
	EdgeThick EdgeClass = iota
	// EdgeThin marks edges rendered with the lighter stroke.
	EdgeThin
)

func (c EdgeClass) String() string {
	if c == EdgeThin {
		return "thin"
	}
	return "thick"
}

// Bucket marks a set of edge indexes as thin while the folded rotation lies
// in [MinDeg, MaxDeg). Boundary angles belong to the bucket they open.
type Bucket struct {
	MinDeg, MaxDeg float64
	Thin           []int
}

// Classifier assigns each edge a stroke class from a fixed angle-bucket
// table. Classification is a pure lookup: classes switch instantly at
// bucket boundaries, there is no blending.
type Classifier struct {
	buckets []Bucket
}

// NewClassifier validates the bucket table. Buckets must sit inside
// [0,180] and must not be empty ranges; overlap is rejected so every angle
// resolves to at most one bucket.
func NewClassifier(buckets []Bucket) (Classifier, error) {
	if len(buckets) == 0 {
		return Classifier{}, fmt.Errorf("classifier has no buckets")
	}
	for i, b := range buckets {
		if b.MinDeg < 0 || b.MaxDeg > 180 || b.MinDeg >= b.MaxDeg {
			return Classifier{}, fmt.Errorf("bucket %d has invalid range [%v,%v)", i, b.MinDeg, b.MaxDeg)
		}
		for _, idx := range b.Thin {
			if idx < 0 {
				return Classifier{}, fmt.Errorf("bucket %d has negative edge index %d", i, idx)
			}
		}
		for j := 0; j < i; j++ {
			if b.MinDeg < buckets[j].MaxDeg && buckets[j].MinDeg < b.MaxDeg {
				return Classifier{}, fmt.Errorf("buckets %d and %d overlap", j, i)
			}
		}
	}
	return Classifier{buckets: buckets}, nil
}

// Classify returns the stroke class of edge at the given rotation in
// degrees. Only the rotation folded into [0,180) matters: full turns are
// discarded and the two half turns of a cycle classify identically.
func (c Classifier) Classify(edge int, rotationDeg float64) EdgeClass {
	deg := stdmath.Mod(rotationDeg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 180 {
		deg -= 180
	}

	for _, b := range c.buckets {
		if deg < b.MinDeg || deg >= b.MaxDeg {
			continue
		}
		for _, idx := range b.Thin {
			if idx == edge {
				return EdgeThin
			}
		}
		return EdgeThick
	}
	return EdgeThick
}

// DefaultEdgeBuckets is the stock table for the 12-edge cube: the front
// ring thins while the cube faces the viewer, the connectors through the
// middle of the turn, the back ring toward the end. Edges 12 and up always
// classify thick.
func DefaultEdgeBuckets() []Bucket {
	return []Bucket{
		{MinDeg: 0, MaxDeg: 45, Thin: []int{4, 5, 6, 7}},
		{MinDeg: 45, MaxDeg: 135, Thin: []int{8, 9, 10, 11}},
		{MinDeg: 135, MaxDeg: 180, Thin: []int{0, 1, 2, 3}},
	}
}
