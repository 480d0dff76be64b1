// Package trace defines the ray/primitive intersection protocol and its
// primitives.
package trace

import (
	"errors"

	"gpro-raytracer/internal/mathutil"
)

// ErrNoTransform is returned by a primitive that was never given a valid
// local-to-world transform.
var ErrNoTransform = errors.New("primitive has no transform")

// Traceable is anything a camera can intersect.
//
// Trace may return any number of hits in any order; callers pick the one they
// need. Implementations must not mutate shared state, since a camera may call
// Trace from several goroutines at once.
type Traceable interface {
	NormalAt(world mathutil.Vec3) (mathutil.Vec3, error)
	Trace(r Ray) ([]Hit, error)
}
