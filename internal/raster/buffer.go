package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gpro-raytracer/internal/rgb"
)

// DefaultColorSpace is the maximum channel value used when serializing.
const DefaultColorSpace = 255

// ErrOutOfRange reports a pixel coordinate outside the image.
var ErrOutOfRange = errors.New("pixel out of range")

// Image holds the render target as one flat slice for cache locality.
// Pixels are stored row-major; (0,0) is the top-left corner.
type Image struct {
	Width      int
	Height     int
	ColorSpace float64
	Pix        []rgb.Color // len = W*H
}

// NewImage allocates a black image with the default color space.
func NewImage(w, h int) (*Image, error) {
	return NewImageColorSpace(w, h, DefaultColorSpace)
}

// NewImageColorSpace allocates a black image serialized against colorSpace.
func NewImageColorSpace(w, h int, colorSpace float64) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: image size %dx%d must be positive", w, h)
	}
	if colorSpace <= 0 {
		return nil, fmt.Errorf("raster: color space %g must be positive", colorSpace)
	}
	pix := make([]rgb.Color, w*h)
	for i := range pix {
		pix[i] = rgb.Black
	}
	return &Image{
		Width:      w,
		Height:     h,
		ColorSpace: colorSpace,
		Pix:        pix,
	}, nil
}

func (img *Image) index(x, y int) (int, error) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0, fmt.Errorf("raster: (%d,%d) in %dx%d image: %w", x, y, img.Width, img.Height, ErrOutOfRange)
	}
	return x + y*img.Width, nil
}

// PixelAt returns a pointer to the pixel at (x, y) for in-place writes.
func (img *Image) PixelAt(x, y int) (*rgb.Color, error) {
	i, err := img.index(x, y)
	if err != nil {
		return nil, err
	}
	return &img.Pix[i], nil
}

// Row returns the pixels of scanline y. The slice aliases the image.
func (img *Image) Row(y int) ([]rgb.Color, error) {
	if _, err := img.index(0, y); err != nil {
		return nil, err
	}
	return img.Pix[y*img.Width : (y+1)*img.Width], nil
}

// ToNRGBA converts to an opaque 8-bit image for the standard encoders.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		off := y * out.Stride
		for x := 0; x < img.Width; x++ {
			r, g, b := img.Pix[x+y*img.Width].NRGBA8()
			i := off + x*4
			out.Pix[i] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 255
		}
	}
	return out
}

// FromImage converts any decoded image to a unit-scale Image.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		Width:      b.Dx(),
		Height:     b.Dy(),
		ColorSpace: DefaultColorSpace,
		Pix:        make([]rgb.Color, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			img.Pix[(x-b.Min.X)+(y-b.Min.Y)*img.Width] = rgb.FromRGB(float64(c.R), float64(c.G), float64(c.B), 255).Normalized()
		}
	}
	return img
}

// Equal reports whether both images have identical size and pixels.
func (img *Image) Equal(o *Image) bool {
	if img.Width != o.Width || img.Height != o.Height || img.ColorSpace != o.ColorSpace {
		return false
	}
	for i := range img.Pix {
		if img.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
