package main

import (
	"fmt"
	"os"
	"strconv"

	"gpro-raytracer/internal/camera"
	"gpro-raytracer/internal/scene"
	"gpro-raytracer/internal/texture"
	"gpro-raytracer/internal/trace"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: probe <scene.json> [x y] [texture-dir]")
		os.Exit(1)
	}
	sc, err := scene.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	texDir := ""
	if len(os.Args) > 4 {
		texDir = os.Args[4]
	}
	built, err := sc.Build(scene.BuildOptions{Textures: texture.NewCache(texture.BuildIndex(texDir))})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	cam := built.Camera

	x, y := cam.Width()/2, cam.Height()/2
	if len(os.Args) > 3 {
		x, _ = strconv.Atoi(os.Args[2])
		y, _ = strconv.Atoi(os.Args[3])
	}
	if x < 0 || x >= cam.Width() || y < 0 || y >= cam.Height() {
		fmt.Printf("Pixel (%d, %d) outside %dx%d\n", x, y, cam.Width(), cam.Height())
		os.Exit(1)
	}

	fmt.Printf("Scene %q: %dx%d, fov %.1f°, %d primitives\n",
		sc.Name, cam.Width(), cam.Height(), sc.Camera.FOVDeg, len(built.Objects))
	for i, o := range built.Objects {
		if s, ok := o.(*trace.Sphere); ok {
			c := s.Center()
			fmt.Printf("  Sphere[%d]: center=(%.3f, %.3f, %.3f) r=%.3f shader=%T\n", i, c[0], c[1], c[2], s.Radius(), s.Shader)
		}
	}

	r := cam.PrepareTracer(x, y)
	fmt.Printf("Pixel (%d, %d): dir=(%.4f, %.4f, %.4f)\n", x, y, r.Direction[0], r.Direction[1], r.Direction[2])

	for i, o := range built.Objects {
		hits, err := o.Trace(r)
		if err != nil {
			fmt.Printf("  [%d] error: %v\n", i, err)
			continue
		}
		for _, h := range hits {
			fmt.Printf("  [%d] t=%.4f dist=%.4f pos=(%.3f, %.3f, %.3f) n=(%.3f, %.3f, %.3f)\n",
				i, h.T, h.Distance(r.Origin), h.Position[0], h.Position[1], h.Position[2],
				h.Normal[0], h.Normal[1], h.Normal[2])
		}
	}

	if h, ok := camera.Nearest(r, cam.Collect(r, built.Objects)); ok {
		fmt.Printf("Nearest: dist=%.4f\n", h.Distance(r.Origin))
	} else {
		fmt.Println("Nearest: none (background)")
	}
	c := cam.Shade(x, y, built.Objects).Normalized()
	fmt.Printf("Color: (%.4f, %.4f, %.4f)\n", c.R, c.G, c.B)
}
