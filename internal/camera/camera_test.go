package camera

import (
	"context"
	"errors"
	"math"
	"testing"

	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/rgb"
	"gpro-raytracer/internal/trace"
)

func mustSphere(t *testing.T, center mathutil.Vec3, r float64, sh trace.Shader) *trace.Sphere {
	t.Helper()
	s, err := trace.NewSphere(center, r)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	s.Shader = sh
	return s
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		fov  float64
	}{
		{"zero width", 0, 10, 1},
		{"negative height", 10, -1, 1},
		{"zero fov", 10, 10, 0},
		{"fov pi", 10, 10, math.Pi},
		{"nan fov", 10, 10, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.w, tc.h, tc.fov); !errors.Is(err, mathutil.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
	if _, err := New(4, 4, 1, WithColorSpace(0)); !errors.Is(err, mathutil.ErrInvalidArgument) {
		t.Fatalf("zero color space: err = %v", err)
	}
}

func TestPrepareTracer(t *testing.T) {
	cam, err := New(320, 180, mathutil.Deg2Rad(90))
	if err != nil {
		t.Fatal(err)
	}
	center := cam.PrepareTracer(160, 90)
	if center.Origin != mathutil.Zero3 {
		t.Fatalf("origin = %v", center.Origin)
	}
	if center.Direction[0] != 0 || center.Direction[1] != 0 || center.Direction[2] != 1 {
		t.Fatalf("center direction = %v, want +Z", center.Direction)
	}

	// tan(45°) = 1, so column 0 looks 45° left and row 0 looks up.
	corner := cam.PrepareTracer(0, 0)
	want := mathutil.Vec3{-1, 0.5625, 1}
	if !corner.Direction.ApproxEqual(want, 1e-12) {
		t.Fatalf("corner direction = %v, want %v", corner.Direction, want)
	}
}

func TestEndToEndScene(t *testing.T) {
	cam, err := New(320, 180, mathutil.Deg2Rad(75))
	if err != nil {
		t.Fatal(err)
	}
	s := mustSphere(t, mathutil.Vec3{0, 0, 2}, 0.5, nil)
	objs := []trace.Traceable{s}

	r := cam.PrepareTracer(160, 90)
	hits := cam.Collect(r, objs)
	if len(hits) != 2 {
		t.Fatalf("center hits = %d, want 2", len(hits))
	}
	for _, h := range hits {
		if d := h.Distance(r.Origin); d < 1.5-1e-9 || d > 2.5+1e-9 {
			t.Fatalf("hit distance %v outside sphere", d)
		}
	}

	img, err := cam.Render(objs)
	if err != nil {
		t.Fatal(err)
	}
	px, _ := img.PixelAt(160, 90)
	if want := rgb.FromRGB(0.5, 0.5, 0, 1); *px != want {
		t.Fatalf("center pixel = %v, want %v", *px, want)
	}
	for _, c := range [][2]int{{0, 0}, {319, 0}, {0, 179}, {319, 179}} {
		got, _ := img.PixelAt(c[0], c[1])
		want := DirectionBackground.At(cam.PrepareTracer(c[0], c[1]).Direction, c[0], c[1])
		if *got != want {
			t.Errorf("corner %v = %v, want background %v", c, *got, want)
		}
	}
}

func TestNearestHitWins(t *testing.T) {
	red := rgb.FromRGB(1, 0, 0, 1)
	blue := rgb.FromRGB(0, 0, 1, 1)
	near := mustSphere(t, mathutil.Vec3{0, 0, 4}, 1, trace.SolidShader{Color: red})
	far := mustSphere(t, mathutil.Vec3{0, 0, 6}, 1, trace.SolidShader{Color: blue})

	cam, err := New(9, 9, mathutil.Deg2Rad(60))
	if err != nil {
		t.Fatal(err)
	}
	// The far sphere is listed first; order must not matter.
	got := cam.Shade(4, 4, []trace.Traceable{far, near})
	if got != red {
		t.Fatalf("color = %v, want near sphere", got)
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	a := rgb.FromRGB(1, 0, 0, 1)
	b := rgb.FromRGB(0, 1, 0, 1)
	first := mustSphere(t, mathutil.Vec3{0, 0, 3}, 1, trace.SolidShader{Color: a})
	second := mustSphere(t, mathutil.Vec3{0, 0, 3}, 1, trace.SolidShader{Color: b})

	cam, err := New(9, 9, mathutil.Deg2Rad(60))
	if err != nil {
		t.Fatal(err)
	}
	if got := cam.Shade(4, 4, []trace.Traceable{first, second}); got != a {
		t.Fatalf("tie color = %v, want first listed", got)
	}
	if _, ok := Nearest(trace.Ray{}, nil); ok {
		t.Fatal("Nearest of no hits reported a hit")
	}
}

type brokenTraceable struct{}

func (brokenTraceable) NormalAt(mathutil.Vec3) (mathutil.Vec3, error) {
	return mathutil.Vec3{}, trace.ErrNoTransform
}

func (brokenTraceable) Trace(trace.Ray) ([]trace.Hit, error) {
	return nil, trace.ErrNoTransform
}

func TestFailingPrimitiveIsSkipped(t *testing.T) {
	green := rgb.FromRGB(0, 1, 0, 1)
	s := mustSphere(t, mathutil.Vec3{0, 0, 3}, 1, trace.SolidShader{Color: green})
	cam, err := New(8, 8, mathutil.Deg2Rad(60))
	if err != nil {
		t.Fatal(err)
	}
	img, err := cam.Render([]trace.Traceable{brokenTraceable{}, s})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	px, _ := img.PixelAt(4, 4)
	if *px != green {
		t.Fatalf("center = %v, want sphere color", *px)
	}
}

func TestSolidAndGradientBackground(t *testing.T) {
	gray := rgb.FromRGB(128, 128, 128, 255)
	cam, err := New(4, 3, 1, WithBackground(SolidBackground(gray)), WithColorSpace(1023))
	if err != nil {
		t.Fatal(err)
	}
	img, err := cam.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	if img.ColorSpace != 1023 {
		t.Fatalf("color space = %v", img.ColorSpace)
	}
	for i, p := range img.Pix {
		if p != gray {
			t.Fatalf("pixel %d = %v", i, p)
		}
	}

	g := GradientBackground(rgb.White, rgb.Black, 3)
	if top := g.At(mathutil.Forward, 0, 0); top != rgb.White {
		t.Fatalf("top = %v", top)
	}
	if mid := g.At(mathutil.Forward, 0, 1); mid.R != 0.5 {
		t.Fatalf("middle = %v", mid)
	}
}

func TestParallelRenderMatchesSequential(t *testing.T) {
	cam, err := New(64, 36, mathutil.Deg2Rad(75))
	if err != nil {
		t.Fatal(err)
	}
	objs := []trace.Traceable{
		mustSphere(t, mathutil.Vec3{-0.5, 0, 3}, 0.6, trace.HueShader{Saturation: 1, Value: 1}),
		mustSphere(t, mathutil.Vec3{0.5, 0.2, 4}, 0.8, nil),
	}
	seq, err := cam.Render(objs)
	if err != nil {
		t.Fatal(err)
	}
	par, err := cam.RenderContext(context.Background(), objs, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !seq.Equal(par) {
		t.Fatal("parallel render differs from sequential render")
	}
}

func TestRenderCancelled(t *testing.T) {
	cam, err := New(16, 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		if _, err := cam.RenderContext(ctx, nil, workers); !errors.Is(err, context.Canceled) {
			t.Fatalf("workers=%d: err = %v, want context.Canceled", workers, err)
		}
	}
}
