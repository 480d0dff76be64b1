package mathutil

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Add(b); got != (Vec3{5, -3, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec3{-3, 7, -3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := MulScalar(2, a); got != a.Scale(2) {
		t.Errorf("MulScalar = %v, want same as Scale", got)
	}
	if got := a.Div(2); got != (Vec3{0.5, 1, 1.5}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
	if got := Right.Cross(Up); got != Forward {
		t.Errorf("Right x Up = %v, want Forward", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := Vec3{rng.NormFloat64() * 100, rng.NormFloat64(), rng.NormFloat64() * 1e-3}
		if v.Magnitude() == 0 {
			continue
		}
		if got := v.Normalize().Magnitude(); math.Abs(got-1) > 1e-12 {
			t.Fatalf("|normalize(%v)| = %.15g", v, got)
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	if got := Zero3.Normalize(); got != Zero3 {
		t.Fatalf("Normalize(0) = %v, want zero vector", got)
	}
	if got := Zero3.WithMagnitude(5); got != Zero3 {
		t.Fatalf("WithMagnitude on zero = %v, want zero vector", got)
	}
}

func TestWithBoundedMagnitude(t *testing.T) {
	v := Vec3{3, 4, 0} // length 5
	if got := v.WithBoundedMagnitude(1, 10); got != v {
		t.Errorf("in-bounds = %v, want unchanged", got)
	}
	if got := v.WithBoundedMagnitude(6, 10).Magnitude(); math.Abs(got-6) > 1e-12 {
		t.Errorf("raised length = %v, want 6", got)
	}
	if got := v.WithBoundedMagnitude(1, 2).Magnitude(); math.Abs(got-2) > 1e-12 {
		t.Errorf("lowered length = %v, want 2", got)
	}
}

func TestAngle(t *testing.T) {
	if got := Right.Angle(Up); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle(right, up) = %v", got)
	}
	// parallel vectors whose cosine rounds above 1
	a := Vec3{0.1, 0.2, 0.3}
	if got := a.Angle(a.Scale(3)); math.IsNaN(got) || got > 1e-6 {
		t.Errorf("Angle(parallel) = %v, want ~0", got)
	}
	if got := a.Angle(a.Neg()); math.Abs(got-math.Pi) > 1e-6 {
		t.Errorf("Angle(opposite) = %v, want pi", got)
	}
	if got := Zero3.Angle(Up); got != 0 {
		t.Errorf("Angle with zero vector = %v, want 0", got)
	}
}

func TestWrap01(t *testing.T) {
	for _, c := range []struct{ in, want float64 }{
		{0.25, 0.25}, {1.25, 0.25}, {-0.25, 0.75}, {2, 0}, {-1, 0},
	} {
		if got := Wrap01(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Wrap01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRemap(t *testing.T) {
	if got := Remap(160, 0, 320, -0.5, 0.5); got != 0 {
		t.Errorf("Remap center = %v, want 0", got)
	}
	if got := Remap(0, 0, 320, -0.5, 0.5); got != -0.5 {
		t.Errorf("Remap edge = %v, want -0.5", got)
	}
}
