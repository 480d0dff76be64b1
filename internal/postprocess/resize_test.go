package postprocess

import (
	"errors"
	"math"
	"testing"

	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/raster"
	"gpro-raytracer/internal/rgb"
)

func filled(t *testing.T, w, h int, c rgb.Color) *raster.Image {
	t.Helper()
	img, err := raster.NewImage(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range img.Pix {
		img.Pix[i] = c
	}
	return img
}

func assertUniform(t *testing.T, img *raster.Image, want rgb.Color) {
	t.Helper()
	const eps = 1.0 / 255
	for i, p := range img.Pix {
		p = p.Normalized()
		if math.Abs(p.R-want.R) > eps || math.Abs(p.G-want.G) > eps || math.Abs(p.B-want.B) > eps {
			t.Fatalf("pixel %d = %v, want %v", i, p, want)
		}
	}
}

func TestResizeKeepsAspect(t *testing.T) {
	c := rgb.FromRGB(1, 0.5, 0, 1)
	out, err := Resize(filled(t, 320, 180, c), 160)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width != 160 || out.Height != 90 {
		t.Fatalf("size = %dx%d, want 160x90", out.Width, out.Height)
	}
	assertUniform(t, out, c)

	up, err := Resize(filled(t, 2, 2, c), 4)
	if err != nil {
		t.Fatal(err)
	}
	if up.Width != 4 || up.Height != 4 {
		t.Fatalf("upscaled size = %dx%d", up.Width, up.Height)
	}
	assertUniform(t, up, c)
}

func TestResizeSameWidthIsIdentity(t *testing.T) {
	img := filled(t, 8, 4, rgb.White)
	out, err := Resize(img, 8)
	if err != nil {
		t.Fatal(err)
	}
	if out != img {
		t.Fatal("expected the input image back")
	}
	if _, err := Resize(img, 0); !errors.Is(err, mathutil.ErrInvalidArgument) {
		t.Fatalf("err = %v", err)
	}
}
