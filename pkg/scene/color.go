package scene

import (
	"fmt"
	stdmath "math"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (leading '#' optional) into an RGB.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

// LerpRGB mixes base toward accent by progress p in [0,1]. The blend factor
// is p^1.5 so the ramp starts slow; each channel mixes linearly and rounds
// to the nearest integer. p=0 returns base exactly, p=1 accent exactly.
func LerpRGB(base, accent RGB, p float64) RGB {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	blend := stdmath.Pow(p, 1.5)
	return RGB{
		R: mixChannel(base.R, accent.R, blend),
		G: mixChannel(base.G, accent.G, blend),
		B: mixChannel(base.B, accent.B, blend),
	}
}

func mixChannel(base, accent uint8, blend float64) uint8 {
	v := stdmath.Round(float64(base)*(1-blend) + float64(accent)*blend)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
