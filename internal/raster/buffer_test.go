package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"gpro-raytracer/internal/rgb"
)

func TestNewImageRejectsBadSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-3, 4}} {
		if _, err := NewImage(sz[0], sz[1]); err == nil {
			t.Errorf("NewImage(%d,%d) succeeded", sz[0], sz[1])
		}
	}
	if _, err := NewImageColorSpace(2, 2, 0); err == nil {
		t.Error("NewImageColorSpace with zero color space succeeded")
	}
}

func TestPixelAtBoundsChecked(t *testing.T) {
	img, err := NewImage(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if _, err := img.PixelAt(p[0], p[1]); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PixelAt(%d,%d) error = %v, want ErrOutOfRange", p[0], p[1], err)
		}
	}
	px, err := img.PixelAt(2, 1)
	if err != nil {
		t.Fatal(err)
	}
	*px = rgb.White
	if img.Pix[5] != rgb.White {
		t.Fatal("PixelAt did not return a reference into the buffer")
	}
	row, err := img.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != 3 || row[2] != rgb.White {
		t.Fatalf("Row(1) = %v", row)
	}
}

func TestToNRGBA(t *testing.T) {
	img, _ := NewImage(2, 1)
	img.Pix[0] = rgb.FromRGB(1, 0.5, 0, 1)
	img.Pix[1] = rgb.FromRGB(10, 20, 30, 255)
	out := img.ToNRGBA()
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 127, 0, 255}) {
		t.Errorf("pixel 0 = %v", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel 1 = %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{255, 0, 51, 255})
	img := FromImage(src)
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	c := img.Pix[3]
	if c.R != 1 || c.G != 0 || c.B != 0.2 {
		t.Fatalf("pixel = %+v", c)
	}
}

func TestSampleTextureCorners(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	tex.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	if c := SampleTexture(tex, 0, 0); c.R != 0 {
		t.Errorf("u=0 sample = %+v, want black", c)
	}
	if c := SampleTexture(tex, 0.5, 0); c.R != 0.5 {
		t.Errorf("u=0.5 sample = %+v, want mid gray", c)
	}
	if c := SampleTexture(tex, 1.5, 0); c.R != 0.5 {
		t.Errorf("u=1.5 sample = %+v, want wrap to mid gray", c)
	}
}
