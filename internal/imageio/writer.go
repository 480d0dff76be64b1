package imageio

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gpro-raytracer/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Output formats.
const (
	FormatPPM      = "ppm"
	FormatPPMASCII = "ppm-ascii"
	FormatPNG      = "png"
	FormatWebP     = "webp"
	FormatTGA      = "tga"
)

// ErrUnknownFormat is returned for a format name Encode does not support.
var ErrUnknownFormat = errors.New("imageio: unknown format")

// Formats lists every supported format name.
func Formats() []string {
	return []string{FormatPPM, FormatPPMASCII, FormatPNG, FormatWebP, FormatTGA}
}

// Ext returns the file extension, with dot, used for format.
func Ext(format string) string {
	switch format {
	case FormatPPM, FormatPPMASCII:
		return ".ppm"
	case "":
		return ""
	}
	return "." + format
}

// Encode writes img to w in the named format. Formats other than PPM are
// quantized to 8 bits per channel.
func Encode(w io.Writer, img *raster.Image, format string) error {
	switch strings.ToLower(format) {
	case FormatPPM:
		return EncodePPM(w, img, true)
	case FormatPPMASCII:
		return EncodePPM(w, img, false)
	case FormatPNG:
		return png.Encode(w, img.ToNRGBA())
	case FormatWebP:
		if err := nativewebp.Encode(w, img.ToNRGBA(), nil); err != nil {
			return fmt.Errorf("imageio: webp encode: %w", err)
		}
		return nil
	case FormatTGA:
		if err := tga.Encode(w, img.ToNRGBA()); err != nil {
			return fmt.Errorf("imageio: tga encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// Write encodes img into path, creating parent directories as needed.
func Write(path string, img *raster.Image, format string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	return nil
}
