package trace

import (
	"image"
	"math"

	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/raster"
	"gpro-raytracer/internal/rgb"
)

// Surface describes the point being colored, in both spaces.
type Surface struct {
	Local       mathutil.Vec3
	LocalNormal mathutil.Vec3
	World       mathutil.Vec3
	WorldNormal mathutil.Vec3
}

// Shader derives the color painted at a hit. There is no lighting; a shader
// only looks at the surface point itself.
type Shader interface {
	Shade(s Surface) rgb.Color
}

// NormalShader paints the world normal remapped from [-1,1] to [0,1].
type NormalShader struct{}

func (NormalShader) Shade(s Surface) rgb.Color {
	n := s.WorldNormal
	return rgb.FromRGB((n[0]+1)/2, (n[1]+1)/2, (n[2]+1)/2, 1)
}

// SolidShader paints one flat color.
type SolidShader struct {
	Color rgb.Color
}

func (sh SolidShader) Shade(Surface) rgb.Color {
	return sh.Color
}

// HueShader maps the local azimuth around the Y axis to hue.
type HueShader struct {
	Saturation float64
	Value      float64
}

func (sh HueShader) Shade(s Surface) rgb.Color {
	u, _ := sphericalUV(s.LocalNormal)
	return rgb.FromHSV(u, sh.Saturation, sh.Value)
}

// TextureShader wraps an image around the local sphere using
// equirectangular coordinates.
type TextureShader struct {
	Texture *image.NRGBA
}

func (sh TextureShader) Shade(s Surface) rgb.Color {
	if sh.Texture == nil {
		return NormalShader{}.Shade(s)
	}
	u, v := sphericalUV(s.LocalNormal)
	return raster.SampleTexture(sh.Texture, u, v)
}

// sphericalUV returns u in [0,1) around +Y and v in [0,1] from top to bottom.
func sphericalUV(n mathutil.Vec3) (u, v float64) {
	u = mathutil.Wrap01(0.5 + math.Atan2(n[2], n[0])/(2*math.Pi))
	v = 0.5 - math.Asin(mathutil.Clamp(n[1], -1, 1))/math.Pi
	return u, v
}
