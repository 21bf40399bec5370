// Package lighting computes flat per-face colours with a Phong point light
// or a cone-limited spotlight.
package lighting

import "image/color"

// RGB is a linear colour with components nominally in [0, 1].
type RGB struct {
	R, G, B float64
}

// Gray returns the colour (v, v, v).
func Gray(v float64) RGB {
	return RGB{v, v, v}
}

// Add returns the componentwise sum.
func (c RGB) Add(o RGB) RGB {
	return RGB{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the componentwise product.
func (c RGB) Mul(o RGB) RGB {
	return RGB{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale multiplies every component by s.
func (c RGB) Scale(s float64) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Clamp limits every component to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Lerp blends c toward o by t.
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		c.R + (o.R-c.R)*t,
		c.G + (o.G-c.G)*t,
		c.B + (o.B-c.B)*t,
	}
}

// RGBA converts to an opaque 8-bit colour, clamping first.
func (c RGB) RGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
