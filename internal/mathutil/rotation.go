package mathutil

import "math"

// RotX returns a 4×4 rotation around the X axis. Angle in radians.
func RotX(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return rows4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotY returns a 4×4 rotation around the Y axis.
func RotY(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return rows4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotZ returns a 4×4 rotation around the Z axis.
func RotZ(a float64) Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return rows4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Scale returns a 4×4 axis-aligned scale.
func Scale(v Vec3) Matrix {
	return rows4(
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	)
}

// TRS composes translate × rotate × scale. Rotation is Euler XYZ in degrees.
func TRS(pos, rotDeg Vec3, scale Vec3) Matrix {
	r := FromQuat(EulerToQuat(Deg2Rad(rotDeg[0]), Deg2Rad(rotDeg[1]), Deg2Rad(rotDeg[2])))
	return mustMul(mustMul(Translate(pos), r), Scale(scale))
}

func rows4(v ...float64) Matrix {
	out := newMatrix(4)
	copy(out.m, v)
	return out
}
