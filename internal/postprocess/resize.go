// Package postprocess resamples rendered images before they are written.
package postprocess

import (
	"fmt"
	"image"

	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/raster"

	"golang.org/x/image/draw"
)

// Downsample reduces img to width×height with Catmull-Rom filtering.
// Renders are opaque, so no alpha premultiplication is needed.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	scaler := draw.Interpolator(draw.CatmullRom)
	if width >= b.Dx() && height >= b.Dy() {
		// Upscaling a render should keep hard pixel edges.
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Resize returns img scaled to the given width, keeping the aspect ratio.
// The result keeps img's color space but carries 8-bit precision.
func Resize(img *raster.Image, width int) (*raster.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("postprocess: width %d must be positive: %w", width, mathutil.ErrInvalidArgument)
	}
	if width == img.Width {
		return img, nil
	}
	height := (img.Height*width + img.Width/2) / img.Width
	if height < 1 {
		height = 1
	}
	out := raster.FromImage(Downsample(img.ToNRGBA(), width, height))
	out.ColorSpace = img.ColorSpace
	return out, nil
}
