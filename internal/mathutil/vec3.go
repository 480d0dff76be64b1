package mathutil

import "math"

// Vec3 is a 3-component vector (value type, stack-allocated).
// Every method returns a new value; the receiver is never modified.
type Vec3 [3]float64

// Quick-reference directions. Forward is +Z, the camera's view axis.
var (
	Zero3    = Vec3{0, 0, 0}
	One3     = Vec3{1, 1, 1}
	Right    = Vec3{1, 0, 0}
	Left     = Vec3{-1, 0, 0}
	Up       = Vec3{0, 1, 0}
	Down     = Vec3{0, -1, 0}
	Forward  = Vec3{0, 0, 1}
	Backward = Vec3{0, 0, -1}
)

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// MulScalar is left multiplication s·v.
func MulScalar(s float64, v Vec3) Vec3 {
	return v.Scale(s)
}

// Div divides every component by s. Division by zero follows IEEE rules.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Magnitude returns the Euclidean norm.
func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize returns a unit-length copy. A zero-length vector normalizes to the
// zero vector instead of NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Magnitude()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// WithMagnitude scales v to length m. The zero vector stays zero.
func (v Vec3) WithMagnitude(m float64) Vec3 {
	l := v.Magnitude()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(m / l)
}

// WithBoundedMagnitude clamps the length of v into [min, max].
func (v Vec3) WithBoundedMagnitude(min, max float64) Vec3 {
	l := v.Magnitude()
	switch {
	case l < min:
		return v.WithMagnitude(min)
	case l > max:
		return v.WithMagnitude(max)
	}
	return v
}

// Angle returns the angle between a and b in radians. The cosine is clamped to
// [-1, 1] before acos; a zero-length operand yields 0.
func (a Vec3) Angle(b Vec3) float64 {
	den := a.Magnitude() * b.Magnitude()
	if den == 0 {
		return 0
	}
	return math.Acos(Clamp(a.Dot(b)/den, -1, 1))
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
