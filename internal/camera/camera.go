// Package camera turns pixels into primary rays and composites the nearest
// hit of every ray into an image.
package camera

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"gpro-raytracer/internal/logging"
	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/raster"
	"gpro-raytracer/internal/rgb"
	"gpro-raytracer/internal/trace"
)

// Camera sits at the world origin looking down +Z with +Y up. It holds no
// per-render state and may be shared between renders.
type Camera struct {
	width      int
	height     int
	fov        float64
	tanHalf    float64
	colorSpace float64
	background Background
}

// Option configures a Camera.
type Option func(*Camera)

// WithBackground sets the color used for pixels that hit nothing.
func WithBackground(bg Background) Option {
	return func(c *Camera) {
		if bg != nil {
			c.background = bg
		}
	}
}

// WithColorSpace sets the serialization color space of rendered images.
func WithColorSpace(cs float64) Option {
	return func(c *Camera) {
		c.colorSpace = cs
	}
}

// New returns a camera for a width×height viewport. fov is the horizontal
// field of view in radians and must lie in (0, π).
func New(width, height int, fov float64, opts ...Option) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("camera: viewport %dx%d must be positive: %w", width, height, mathutil.ErrInvalidArgument)
	}
	if !(fov > 0 && fov < math.Pi) {
		return nil, fmt.Errorf("camera: field of view %g rad outside (0, π): %w", fov, mathutil.ErrInvalidArgument)
	}
	c := &Camera{
		width:      width,
		height:     height,
		fov:        fov,
		tanHalf:    math.Tan(fov / 2),
		colorSpace: raster.DefaultColorSpace,
		background: DirectionBackground,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !(c.colorSpace > 0) {
		return nil, fmt.Errorf("camera: color space %g must be positive: %w", c.colorSpace, mathutil.ErrInvalidArgument)
	}
	return c, nil
}

func (c *Camera) Width() int   { return c.width }
func (c *Camera) Height() int  { return c.height }
func (c *Camera) FOV() float64 { return c.fov }

// PrepareTracer returns the primary ray of pixel (px, py).
//
// Pixel coordinates map linearly from [0,w)×[0,h) to [-0.5,0.5), so pixel
// (w/2, h/2) looks straight down +Z and column 0 looks tan(fov/2) to the
// left. The vertical extent is scaled by h/w to keep proportions; row 0 is
// the top of the image.
func (c *Camera) PrepareTracer(px, py int) trace.Ray {
	nx := mathutil.Remap(float64(px), 0, float64(c.width), -0.5, 0.5)
	ny := mathutil.Remap(float64(py), 0, float64(c.height), -0.5, 0.5)
	aspect := float64(c.height) / float64(c.width)
	return trace.Ray{
		Origin: mathutil.Zero3,
		Direction: mathutil.Vec3{
			2 * nx * c.tanHalf,
			-2 * ny * c.tanHalf * aspect,
			1,
		},
	}
}

// Nearest returns the hit closest to the ray origin. The first of several
// equally distant hits wins.
func Nearest(r trace.Ray, hits []trace.Hit) (trace.Hit, bool) {
	if len(hits) == 0 {
		return trace.Hit{}, false
	}
	best := 0
	bestDist := hits[0].Distance(r.Origin)
	for i := 1; i < len(hits); i++ {
		if d := hits[i].Distance(r.Origin); d < bestDist {
			best, bestDist = i, d
		}
	}
	return hits[best], true
}

// failureLog reports each failing primitive once per render.
type failureLog struct {
	seen []atomic.Bool
}

func newFailureLog(n int) *failureLog {
	return &failureLog{seen: make([]atomic.Bool, n)}
}

func (f *failureLog) report(i int, err error) {
	if f == nil || f.seen[i].Swap(true) {
		return
	}
	logging.Logger().Warn("camera: skipping primitive", "index", i, "err", err)
}

// Collect traces r against every object in order and concatenates the hits.
// Objects that fail to trace are skipped.
func (c *Camera) Collect(r trace.Ray, objs []trace.Traceable) []trace.Hit {
	return collect(r, objs, nil)
}

func collect(r trace.Ray, objs []trace.Traceable, fl *failureLog) []trace.Hit {
	var all []trace.Hit
	for i, o := range objs {
		hits, err := o.Trace(r)
		if err != nil {
			fl.report(i, err)
			continue
		}
		all = append(all, hits...)
	}
	return all
}

// Shade returns the final color of pixel (px, py).
func (c *Camera) Shade(px, py int, objs []trace.Traceable) rgb.Color {
	return c.shade(px, py, objs, nil)
}

func (c *Camera) shade(px, py int, objs []trace.Traceable, fl *failureLog) rgb.Color {
	r := c.PrepareTracer(px, py)
	if h, ok := Nearest(r, collect(r, objs, fl)); ok {
		return h.Color
	}
	return c.background.At(r.Direction, px, py)
}

// Render traces every pixel on the calling goroutine.
func (c *Camera) Render(objs []trace.Traceable) (*raster.Image, error) {
	return c.RenderContext(context.Background(), objs, 1)
}

// RenderContext renders with a pool of workers, one scanline at a time.
// Cancellation is checked between scanlines. The image is identical for any
// worker count.
func (c *Camera) RenderContext(ctx context.Context, objs []trace.Traceable, workers int) (*raster.Image, error) {
	img, err := raster.NewImageColorSpace(c.width, c.height, c.colorSpace)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > c.height {
		workers = c.height
	}
	fl := newFailureLog(len(objs))

	renderRow := func(y int) {
		row := img.Pix[y*c.width : (y+1)*c.width]
		for x := range row {
			row[x] = c.shade(x, y, objs, fl)
		}
	}

	if workers == 1 {
		for y := 0; y < c.height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			renderRow(y)
		}
		return img, nil
	}

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if ctx.Err() != nil {
					continue
				}
				renderRow(y)
			}
		}()
	}

send:
	for y := 0; y < c.height; y++ {
		select {
		case rows <- y:
		case <-ctx.Done():
			break send
		}
	}
	close(rows)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}
