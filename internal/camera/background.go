package camera

import (
	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/rgb"
)

// Background colors pixels whose primary ray hits nothing. It must be a pure
// function of its arguments so renders stay reproducible.
type Background interface {
	At(dir mathutil.Vec3, x, y int) rgb.Color
}

// BackgroundFunc adapts a function to Background.
type BackgroundFunc func(dir mathutil.Vec3, x, y int) rgb.Color

func (f BackgroundFunc) At(dir mathutil.Vec3, x, y int) rgb.Color {
	return f(dir, x, y)
}

// DirectionBackground paints the normalized ray direction remapped from
// [-1,1] to [0,1].
var DirectionBackground = BackgroundFunc(func(dir mathutil.Vec3, _, _ int) rgb.Color {
	n := dir.Normalize()
	return rgb.FromRGB((n[0]+1)/2, (n[1]+1)/2, (n[2]+1)/2, 1)
})

// SolidBackground paints every miss with c.
func SolidBackground(c rgb.Color) Background {
	return BackgroundFunc(func(mathutil.Vec3, int, int) rgb.Color { return c })
}

// GradientBackground blends from top at row 0 to bottom at the last row.
func GradientBackground(top, bottom rgb.Color, height int) Background {
	top, bottom = top.Normalized(), bottom.Normalized()
	return BackgroundFunc(func(_ mathutil.Vec3, _, y int) rgb.Color {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		return rgb.FromRGB(
			mathutil.Lerp(top.R, bottom.R, t),
			mathutil.Lerp(top.G, bottom.G, t),
			mathutil.Lerp(top.B, bottom.B, t),
			1,
		)
	})
}
