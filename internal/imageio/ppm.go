// Package imageio serializes rendered images.
package imageio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"gpro-raytracer/internal/raster"
)

// EncodePPM writes img as a Netpbm pixmap. Binary output is P6, otherwise P3.
// The maxval is the image's ColorSpace. P6 samples take one byte when the
// color space is below 256 and two big-endian bytes otherwise. Pixels are
// emitted row by row from the top.
func EncodePPM(w io.Writer, img *raster.Image, binaryFormat bool) error {
	maxval := int(math.Round(img.ColorSpace))
	if maxval < 1 || maxval > 65535 {
		return fmt.Errorf("imageio: ppm maxval %d outside [1, 65535]", maxval)
	}
	if len(img.Pix) != img.Width*img.Height {
		return fmt.Errorf("imageio: image %dx%d has %d pixels", img.Width, img.Height, len(img.Pix))
	}

	bw := bufio.NewWriter(w)
	magic := "P3"
	if binaryFormat {
		magic = "P6"
	}
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", magic, img.Width, img.Height, maxval); err != nil {
		return err
	}

	cs := float64(maxval)
	wide := maxval >= 256
	var sample [2]byte
	for y := 0; y < img.Height; y++ {
		row := img.Pix[y*img.Width : (y+1)*img.Width]
		for x, c := range row {
			ch := c.Channels(cs)
			if !binaryFormat {
				sep := " "
				if x == len(row)-1 {
					sep = "\n"
				}
				if _, err := fmt.Fprintf(bw, "%d %d %d%s", ch[0], ch[1], ch[2], sep); err != nil {
					return err
				}
				continue
			}
			for _, v := range ch {
				if wide {
					binary.BigEndian.PutUint16(sample[:], uint16(v))
					if _, err := bw.Write(sample[:]); err != nil {
						return err
					}
				} else if err := bw.WriteByte(byte(v)); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}
