package scene

import (
	"fmt"

	"github.com/glitchlab/wirespin/pkg/anim"
	"github.com/glitchlab/wirespin/pkg/math"
)

// Config bundles everything a frame computation needs: geometry, the clock,
// the stage and bucket tables and the palette. Validate once, then treat as
// read-only; ComputeFrame never writes to it, so any number of goroutines
// or animation instances may share one Config or carry their own.
type Config struct {
	// ID routes output when several animation instances run at once. It has
	// no effect on the computed frame.
	ID string

	Outer Geometry
	Inner Geometry
	// Segments are optional explicit outer strokes, classified and drawn in
	// addition to Outer's indexed edges.
	Segments []Segment

	Scale  float64
	Clock  *anim.Clock
	Stages anim.StageTable
	Edges  Classifier

	// Base and Accent are the two palette endpoints face fills sweep
	// between.
	Base   RGB
	Accent RGB
}

// Validate checks the whole bundle and reports the first configuration bug
// found. A Config that fails validation must not be animated.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.Clock == nil {
		return fmt.Errorf("config has no clock")
	}
	if err := c.Outer.Validate(); err != nil {
		return fmt.Errorf("outer geometry: %w", err)
	}
	if err := c.Inner.Validate(); err != nil {
		return fmt.Errorf("inner geometry: %w", err)
	}
	if err := c.Stages.Validate(); err != nil {
		return fmt.Errorf("stage table: %w", err)
	}
	if got, want := c.Stages.Len(), len(c.Inner.Faces); got != want {
		return fmt.Errorf("stage table covers %d faces, inner geometry has %d", got, want)
	}
	return nil
}

// EdgeLine is one classified stroke in screen space.
type EdgeLine struct {
	A, B  math.Vec2
	Class EdgeClass
}

// FaceFill is one filled polygon in screen space.
type FaceFill struct {
	Points []math.Vec2
	Fill   RGB
}

// Frame is the complete draw list for one timestamp. It is ephemeral:
// rebuilt from scratch every tick and handed to the host, never retained.
type Frame struct {
	ID     string
	Sample anim.Sample

	OuterPoints []math.Vec2
	InnerPoints []math.Vec2

	Edges    []EdgeLine
	Segments []EdgeLine
	Faces    []FaceFill
}

// ComputeFrame evaluates the scene at a timestamp. It is a pure function of
// its inputs: the outer geometry spins on the clock's outer channel, the
// inner geometry on the combined rotation, faces pick up their staged fill
// color and edges their stroke class.
func ComputeFrame(timestampMs float64, cfg *Config) Frame {
	s := cfg.Clock.At(timestampMs)

	outerPts := projectAll(cfg.Outer.Vertices, s.Outer, cfg.Scale)
	innerPts := projectAll(cfg.Inner.Vertices, s.Combined, cfg.Scale)

	edges := make([]EdgeLine, len(cfg.Outer.Edges))
	for i, e := range cfg.Outer.Edges {
		edges[i] = EdgeLine{
			A:     outerPts[e[0]],
			B:     outerPts[e[1]],
			Class: cfg.Edges.Classify(i, s.Degrees),
		}
	}

	var segments []EdgeLine
	if len(cfg.Segments) > 0 {
		segments = make([]EdgeLine, len(cfg.Segments))
		for i, seg := range cfg.Segments {
			segments[i] = EdgeLine{
				A:     Project(s.Outer.TransformVec3(seg.A), cfg.Scale),
				B:     Project(s.Outer.TransformVec3(seg.B), cfg.Scale),
				Class: cfg.Edges.Classify(i, s.Degrees),
			}
		}
	}

	faces := make([]FaceFill, len(cfg.Inner.Faces))
	for i, f := range cfg.Inner.Faces {
		pts := make([]math.Vec2, len(f))
		for j, idx := range f {
			pts[j] = innerPts[idx]
		}
		faces[i] = FaceFill{
			Points: pts,
			Fill:   LerpRGB(cfg.Base, cfg.Accent, cfg.Stages.Progress(s.Eased, i)),
		}
	}

	return Frame{
		ID:          cfg.ID,
		Sample:      s,
		OuterPoints: outerPts,
		InnerPoints: innerPts,
		Edges:       edges,
		Segments:    segments,
		Faces:       faces,
	}
}

func projectAll(verts []math.Vec3, m math.Mat4, scale float64) []math.Vec2 {
	out := make([]math.Vec2, len(verts))
	for i, v := range verts {
		out[i] = Project(m.TransformVec3(v), scale)
	}
	return out
}

// Surface is the abstract drawing target. The engine never rasterizes;
// hosts implement Surface over whatever they draw with (SVG elements, an
// SDL renderer, a test recorder).
type Surface interface {
	Line(a, b math.Vec2, width float64, c RGB)
	Polygon(pts []math.Vec2, fill RGB)
}

// Style maps edge classes to stroke widths and sets the stroke color.
type Style struct {
	Thin   float64
	Thick  float64
	Stroke RGB
}

// DefaultStyle is the stock stroke styling.
func DefaultStyle() Style {
	return Style{Thin: 1, Thick: 2.5, Stroke: RGB{230, 230, 235}}
}

// Render replays the frame onto a surface: filled faces first, then the
// explicit segments, then the indexed edges on top.
func (f Frame) Render(s Surface, style Style) {
	for _, face := range f.Faces {
		s.Polygon(face.Points, face.Fill)
	}
	for _, seg := range f.Segments {
		s.Line(seg.A, seg.B, style.width(seg.Class), style.Stroke)
	}
	for _, e := range f.Edges {
		s.Line(e.A, e.B, style.width(e.Class), style.Stroke)
	}
}

func (st Style) width(c EdgeClass) float64 {
	if c == EdgeThin {
		return st.Thin
	}
	return st.Thick
}
