// Package rgb holds the renderer's color type. Channels are stored relative to
// a per-color scale: 1.0 for runtime colors, usually 255 for serialized ones.
package rgb

import (
	"math"

	"gpro-raytracer/internal/mathutil"
)

// Color is an RGB triple interpreted as channel/Scale. A zero Scale is treated
// as 1 so the zero Color is black.
type Color struct {
	R, G, B float64
	Scale   float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// FromRGB builds a color whose channels are expressed in the given scale.
func FromRGB(r, g, b, scale float64) Color {
	return Color{R: r, G: g, B: b, Scale: scale}
}

// FromVec3 reinterprets a vector as a unit-scale color.
func FromVec3(v mathutil.Vec3) Color {
	return Color{R: v[0], G: v[1], B: v[2], Scale: 1}
}

// FromHSV converts hue (wrapped into [0,1)), saturation and value (clamped
// into [0,1]) to a unit-scale color.
func FromHSV(h, s, v float64) Color {
	h = mathutil.Wrap01(h)
	s = mathutil.Clamp01(s)
	v = mathutil.Clamp01(v)

	r := mathutil.Clamp01(math.Abs(6*h-3) - 1)
	g := mathutil.Clamp01(2 - math.Abs(6*h-2))
	b := mathutil.Clamp01(2 - math.Abs(6*h-4))

	return Color{
		R:     v * (1 - s + s*r),
		G:     v * (1 - s + s*g),
		B:     v * (1 - s + s*b),
		Scale: 1,
	}
}

func (c Color) scale() float64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// Normalized returns the channels mapped to scale 1.
func (c Color) Normalized() Color {
	return c.RemapScale(1)
}

// RemapScale changes the scale and remaps channels so the color is unchanged.
func (c Color) RemapScale(newScale float64) Color {
	s := c.scale()
	return Color{R: c.R * newScale / s, G: c.G * newScale / s, B: c.B * newScale / s, Scale: newScale}
}

// WithScale changes only the scale, reinterpreting the channels.
func (c Color) WithScale(newScale float64) Color {
	c.Scale = newScale
	return c
}

func (c Color) maxMin() (float64, float64) {
	n := c.Normalized()
	return math.Max(n.R, math.Max(n.G, n.B)), math.Min(n.R, math.Min(n.G, n.B))
}

// Value is the largest normalized channel.
func (c Color) Value() float64 {
	hi, _ := c.maxMin()
	return hi
}

// Saturation is (max-min)/max of the normalized channels, 0 for black.
func (c Color) Saturation() float64 {
	hi, lo := c.maxMin()
	if hi == 0 {
		return 0
	}
	return (hi - lo) / hi
}

// Hue returns the hue in [0, 1). Grays have hue 0.
func (c Color) Hue() float64 {
	n := c.Normalized()
	hi, lo := c.maxMin()
	d := hi - lo
	if d == 0 {
		return 0
	}
	var h float64
	switch hi {
	case n.R:
		h = (n.G - n.B) / d
	case n.G:
		h = (n.B-n.R)/d + 2
	default:
		h = (n.R-n.G)/d + 4
	}
	return mathutil.Wrap01(h / 6)
}

// Add sums two colors in the scale of c.
func (c Color) Add(o Color) Color {
	o = o.RemapScale(c.scale())
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, Scale: c.scale()}
}

// Mul scales every channel by k.
func (c Color) Mul(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k, Scale: c.scale()}
}

// Channels returns the channels remapped to colorSpace, truncated and clamped
// to [0, colorSpace].
func (c Color) Channels(colorSpace float64) [3]int {
	s := c.scale()
	hi := int(colorSpace)
	return [3]int{
		clampInt(int(c.R*colorSpace/s), hi),
		clampInt(int(c.G*colorSpace/s), hi),
		clampInt(int(c.B*colorSpace/s), hi),
	}
}

// NRGBA8 returns 8-bit channels for image encoders.
func (c Color) NRGBA8() (r, g, b uint8) {
	ch := c.Channels(255)
	return uint8(ch[0]), uint8(ch[1]), uint8(ch[2])
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
