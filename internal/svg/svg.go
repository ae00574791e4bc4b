// Package svg is a host drawing surface that buffers frame primitives as
// SVG elements. Output is deterministic for a given frame so rendered
// frames can be diffed in tests.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/glitchlab/wirespin/pkg/math"
	"github.com/glitchlab/wirespin/pkg/scene"
)

// Canvas implements scene.Surface. The viewBox is centered on the origin,
// matching the projection's coordinate space, so frames need no offsetting.
type Canvas struct {
	width, height float64
	background    scene.RGB
	hasBackground bool
	elements      []string
}

// New creates a canvas with the given viewport size in SVG units.
func New(width, height float64) *Canvas {
	return &Canvas{width: width, height: height}
}

// SetBackground fills the viewport behind the frame.
func (c *Canvas) SetBackground(col scene.RGB) {
	c.background = col
	c.hasBackground = true
}

// Line appends a stroke element.
func (c *Canvas) Line(a, b math.Vec2, width float64, col scene.RGB) {
	c.elements = append(c.elements, fmt.Sprintf(
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="round"/>`,
		a.X, a.Y, b.X, b.Y, col.Hex(), width))
}

// Polygon appends a filled closed path.
func (c *Canvas) Polygon(pts []math.Vec2, fill scene.RGB) {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	c.elements = append(c.elements, fmt.Sprintf(
		`<polygon points="%s" fill="%s"/>`, b.String(), fill.Hex()))
}

// Reset drops buffered elements so the canvas can take the next frame.
func (c *Canvas) Reset() {
	c.elements = c.elements[:0]
	c.hasBackground = false
}

// WriteTo writes the buffered document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">`,
		-c.width/2, -c.height/2, c.width, c.height)
	b.WriteByte('\n')
	if c.hasBackground {
		fmt.Fprintf(&b,
			`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`,
			-c.width/2, -c.height/2, c.width, c.height, c.background.Hex())
		b.WriteByte('\n')
	}
	for _, el := range c.elements {
		b.WriteString(el)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
