package trace

import (
	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/rgb"
)

// Hit is one ray/surface intersection in world space.
type Hit struct {
	Position mathutil.Vec3
	Normal   mathutil.Vec3
	Color    rgb.Color

	// T is the ray parameter in the primitive's local space.
	T      float64
	Object Traceable
}

// Distance returns how far the hit lies from p.
func (h Hit) Distance(p mathutil.Vec3) float64 {
	return h.Position.Sub(p).Magnitude()
}
