package trace

import "gpro-raytracer/internal/mathutil"

// Ray is an origin point and a direction. The direction need not be unit
// length, so t is measured in multiples of it.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// At returns Origin + t·Direction.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(mathutil.MulScalar(t, r.Direction))
}

// AtDistance returns the point d world units along the ray.
func (r Ray) AtDistance(d float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.WithMagnitude(d))
}

// Transform maps the origin as a point and the direction as a vector.
func (r Ray) Transform(m mathutil.Matrix) (Ray, error) {
	o, err := m.TransformPoint(r.Origin)
	if err != nil {
		return Ray{}, err
	}
	d, err := m.TransformVector(r.Direction)
	if err != nil {
		return Ray{}, err
	}
	return Ray{Origin: o, Direction: d}, nil
}
