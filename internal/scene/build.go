package scene

import (
	"fmt"

	"gpro-raytracer/internal/camera"
	"gpro-raytracer/internal/mathutil"
	"gpro-raytracer/internal/rgb"
	"gpro-raytracer/internal/texture"
	"gpro-raytracer/internal/trace"
)

// BuildOptions carries shared resources used while building a scene.
type BuildOptions struct {
	// Textures resolves texture shader names. Nil means no textures.
	Textures texture.Resolver
	// ColorSpace of the rendered image. Zero means 255.
	ColorSpace float64
}

// Built is a scene ready to render.
type Built struct {
	Name    string
	Camera  *camera.Camera
	Objects []trace.Traceable
}

// Build creates the camera and primitives for s.
func (s *Scene) Build(opts BuildOptions) (*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w, h := s.Camera.Width, s.Camera.Height

	camOpts := []camera.Option{camera.WithBackground(s.background(h))}
	if opts.ColorSpace > 0 {
		camOpts = append(camOpts, camera.WithColorSpace(opts.ColorSpace))
	}
	cam, err := camera.New(w, h, mathutil.Deg2Rad(s.Camera.FOVDeg), camOpts...)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", s.Name, err)
	}

	objs := make([]trace.Traceable, 0, len(s.Spheres))
	for i, sp := range s.Spheres {
		scale := mathutil.One3
		if sp.Scale != nil {
			scale = *sp.Scale
		}
		sphere, err := trace.NewSphereTransform(mathutil.TRS(sp.Center, sp.RotationDeg, scale), sp.Radius)
		if err != nil {
			return nil, fmt.Errorf("scene %q: sphere %d: %w", s.Name, i, err)
		}
		sphere.Shader, err = buildShader(sp.Shader, opts.Textures)
		if err != nil {
			return nil, fmt.Errorf("scene %q: sphere %d: %w", s.Name, i, err)
		}
		objs = append(objs, sphere)
	}
	return &Built{Name: s.Name, Camera: cam, Objects: objs}, nil
}

func (s *Scene) background(height int) camera.Background {
	bg := s.Camera.Background
	if bg == nil {
		return camera.DirectionBackground
	}
	switch bg.Kind {
	case BackgroundSolid:
		return camera.SolidBackground(rgb.FromVec3(*bg.Color))
	case BackgroundGradient:
		return camera.GradientBackground(rgb.FromVec3(*bg.Top), rgb.FromVec3(*bg.Bottom), height)
	}
	return camera.DirectionBackground
}

func buildShader(sh *Shader, textures texture.Resolver) (trace.Shader, error) {
	if sh == nil {
		return trace.NormalShader{}, nil
	}
	switch sh.Kind {
	case ShaderSolid:
		return trace.SolidShader{Color: rgb.FromVec3(*sh.Color)}, nil
	case ShaderHue:
		return trace.HueShader{Saturation: orOne(sh.Saturation), Value: orOne(sh.Value)}, nil
	case ShaderTexture:
		if textures == nil {
			return nil, fmt.Errorf("texture %q: %w", sh.Texture, texture.ErrNotFound)
		}
		img, err := textures.Resolve(sh.Texture)
		if err != nil {
			return nil, err
		}
		return trace.TextureShader{Texture: img}, nil
	}
	return trace.NormalShader{}, nil
}

func orOne(p *float64) float64 {
	if p == nil {
		return 1
	}
	return *p
}
