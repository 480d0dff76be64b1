package trace

import (
	"fmt"

	"gpro-raytracer/internal/mathutil"
)

// Sphere is a sphere of the given radius centered on its local origin, placed
// in the world by a local-to-world transform.
//
// The world-to-local transform is the inverse of local-to-world. It is cached
// and recomputed by every setter, so the two can never disagree. A Sphere must
// not be modified while a render is reading it.
type Sphere struct {
	// Shader colors each hit. Nil means NormalShader.
	Shader Shader

	radius float64
	ltw    mathutil.Matrix
	wtl    mathutil.Matrix
}

// NewSphere returns a sphere of radius r centered at center.
func NewSphere(center mathutil.Vec3, r float64) (*Sphere, error) {
	return NewSphereTransform(mathutil.Translate(center), r)
}

// NewSphereTransform returns a sphere placed by an arbitrary 4×4 local-to-world
// transform. The transform must be invertible.
func NewSphereTransform(ltw mathutil.Matrix, r float64) (*Sphere, error) {
	if !(r > 0) {
		return nil, fmt.Errorf("trace: sphere radius %g must be > 0: %w", r, mathutil.ErrInvalidArgument)
	}
	s := &Sphere{radius: r}
	if err := s.SetLocalToWorld(ltw); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sphere) Radius() float64 {
	return s.radius
}

// LocalToWorld returns the placement transform.
func (s *Sphere) LocalToWorld() mathutil.Matrix {
	return s.ltw
}

// WorldToLocal returns the cached inverse of LocalToWorld.
func (s *Sphere) WorldToLocal() mathutil.Matrix {
	return s.wtl
}

// SetLocalToWorld replaces the placement and refreshes the cached inverse.
// On error the sphere is left unchanged.
func (s *Sphere) SetLocalToWorld(m mathutil.Matrix) error {
	if m.Size() != 4 {
		return fmt.Errorf("trace: sphere transform is %dx%d, want 4x4: %w", m.Size(), m.Size(), mathutil.ErrInvalidArgument)
	}
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("trace: sphere transform: %w", err)
	}
	s.ltw, s.wtl = m, inv
	return nil
}

// SetWorldToLocal sets the placement from its inverse.
func (s *Sphere) SetWorldToLocal(m mathutil.Matrix) error {
	if m.Size() != 4 {
		return fmt.Errorf("trace: sphere transform is %dx%d, want 4x4: %w", m.Size(), m.Size(), mathutil.ErrInvalidArgument)
	}
	ltw, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("trace: sphere transform: %w", err)
	}
	s.ltw, s.wtl = ltw, m
	return nil
}

// Center returns the world position of the local origin.
func (s *Sphere) Center() mathutil.Vec3 {
	c, _ := s.ltw.TransformPoint(mathutil.Zero3)
	return c
}

func (s *Sphere) ready() error {
	if s.ltw.Size() != 4 || s.wtl.Size() != 4 {
		return ErrNoTransform
	}
	return nil
}

// NormalAt returns the outward unit normal of the surface point nearest to
// the world position p.
func (s *Sphere) NormalAt(p mathutil.Vec3) (mathutil.Vec3, error) {
	if err := s.ready(); err != nil {
		return mathutil.Vec3{}, err
	}
	local, err := s.wtl.TransformPoint(p)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return s.worldNormal(local.Normalize())
}

func (s *Sphere) worldNormal(localNormal mathutil.Vec3) (mathutil.Vec3, error) {
	n, err := s.ltw.TransformVector(localNormal)
	if err != nil {
		return mathutil.Vec3{}, err
	}
	return n.Normalize(), nil
}

// Trace intersects r with the sphere. It returns up to two hits, nearest root
// first; roots at or behind the ray origin (t ≤ 0) are dropped.
func (s *Sphere) Trace(r Ray) ([]Hit, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	local, err := r.Transform(s.wtl)
	if err != nil {
		return nil, err
	}
	o, d := local.Origin, local.Direction

	q := mathutil.SolveQuadratic(d.Dot(d), 2*o.Dot(d), o.Dot(o)-s.radius*s.radius)
	if q.Count == 0 {
		return nil, nil
	}

	shader := s.Shader
	if shader == nil {
		shader = NormalShader{}
	}

	hits := make([]Hit, 0, q.Count)
	for i := 0; i < q.Count; i++ {
		t := q.Roots[i]
		if t <= 0 {
			continue
		}
		lp := local.At(t)
		ln := lp.Normalize()

		wp, err := s.ltw.TransformPoint(lp)
		if err != nil {
			return nil, err
		}
		wn, err := s.worldNormal(ln)
		if err != nil {
			return nil, err
		}
		hits = append(hits, Hit{
			Position: wp,
			Normal:   wn,
			Color:    shader.Shade(Surface{Local: lp, LocalNormal: ln, World: wp, WorldNormal: wn}),
			T:        t,
			Object:   s,
		})
	}
	return hits, nil
}
