package mathutil

import (
	"fmt"
	"math"
)

// Quadratic holds the real roots of a·t² + b·t + c = 0.
type Quadratic struct {
	Count int
	Roots [2]float64
}

// SolveQuadratic finds the real roots of a·t² + b·t + c = 0.
//
// With two roots, index 0 is the (−b − √D)/2a branch and index 1 the
// (−b + √D)/2a branch. When a == 0 the equation is solved as linear: one root
// −c/b, or none when b is also zero. No NaN or Inf is ever returned.
func SolveQuadratic(a, b, c float64) Quadratic {
	if a == 0 {
		if b == 0 {
			return Quadratic{}
		}
		return Quadratic{Count: 1, Roots: [2]float64{-c / b}}
	}

	d := b*b - 4*a*c
	switch {
	case d < 0:
		return Quadratic{}
	case d == 0:
		return Quadratic{Count: 1, Roots: [2]float64{-b / (2 * a)}}
	}
	sq := math.Sqrt(d)
	return Quadratic{
		Count: 2,
		Roots: [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)},
	}
}

// Root returns solution i.
func (q Quadratic) Root(i int) (float64, error) {
	if i < 0 || i >= q.Count {
		return 0, fmt.Errorf("mathutil: root %d of %d: %w", i, q.Count, ErrInvalidArgument)
	}
	return q.Roots[i], nil
}
