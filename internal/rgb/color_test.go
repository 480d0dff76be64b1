package rgb

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestRemapScale(t *testing.T) {
	c := FromRGB(0.5, 1, 0.25, 1).RemapScale(255)
	if !near(c.R, 127.5) || !near(c.G, 255) || !near(c.B, 63.75) || c.Scale != 255 {
		t.Fatalf("RemapScale(255) = %+v", c)
	}
	back := c.RemapScale(1)
	if !near(back.R, 0.5) || !near(back.B, 0.25) {
		t.Fatalf("RemapScale round trip = %+v", back)
	}
}

func TestChannels(t *testing.T) {
	c := FromRGB(150, 300, -4, 300)
	got := c.Channels(255)
	want := [3]int{127, 255, 0}
	if got != want {
		t.Fatalf("Channels(255) = %v, want %v", got, want)
	}
	if z := (Color{R: 1}).Channels(255); z[0] != 255 {
		t.Fatalf("zero scale treated as %v, want scale 1", z)
	}
}

func TestFromHSVPrimaries(t *testing.T) {
	cases := []struct {
		h    float64
		want Color
	}{
		{0, Color{1, 0, 0, 1}},
		{1.0 / 3, Color{0, 1, 0, 1}},
		{2.0 / 3, Color{0, 0, 1, 1}},
		{1.0 / 6, Color{1, 1, 0, 1}},
		{1, Color{1, 0, 0, 1}},
	}
	for _, c := range cases {
		got := FromHSV(c.h, 1, 1)
		if !near(got.R, c.want.R) || !near(got.G, c.want.G) || !near(got.B, c.want.B) {
			t.Errorf("FromHSV(%v,1,1) = %+v, want %+v", c.h, got, c.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, h := range []float64{0.05, 0.2, 0.45, 0.6, 0.8, 0.95} {
		for _, s := range []float64{0.3, 1} {
			for _, v := range []float64{0.4, 1} {
				c := FromHSV(h, s, v).RemapScale(255)
				if !near(c.Hue(), h) || !near(c.Saturation(), s) || !near(c.Value(), v) {
					t.Fatalf("HSV(%v,%v,%v) -> %+v -> (%v,%v,%v)", h, s, v, c, c.Hue(), c.Saturation(), c.Value())
				}
			}
		}
	}
}

func TestGrayHasNoHue(t *testing.T) {
	g := FromRGB(0.5, 0.5, 0.5, 1)
	if g.Hue() != 0 || g.Saturation() != 0 || g.Value() != 0.5 {
		t.Fatalf("gray HSV = (%v,%v,%v)", g.Hue(), g.Saturation(), g.Value())
	}
	if Black.Saturation() != 0 {
		t.Fatalf("black saturation = %v", Black.Saturation())
	}
}

func TestAddMixedScales(t *testing.T) {
	c := FromRGB(0.5, 0, 0, 1).Add(FromRGB(0, 255, 0, 255))
	if !near(c.R, 0.5) || !near(c.G, 1) || c.Scale != 1 {
		t.Fatalf("Add = %+v", c)
	}
}
