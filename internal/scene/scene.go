// Package scene reads JSON scene descriptions and builds the camera and
// primitives they describe.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gpro-raytracer/internal/mathutil"
)

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("scene: invalid")

// Background kinds.
const (
	BackgroundDirection = "direction"
	BackgroundSolid     = "solid"
	BackgroundGradient  = "gradient"
)

// Shader kinds.
const (
	ShaderNormal  = "normal"
	ShaderSolid   = "solid"
	ShaderHue     = "hue"
	ShaderTexture = "texture"
)

// Scene is the on-disk description of one image.
type Scene struct {
	Name    string   `json:"name"`
	Camera  Camera   `json:"camera"`
	Spheres []Sphere `json:"spheres"`
}

// Camera describes the viewport. FOVDeg is horizontal.
type Camera struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	FOVDeg     float64     `json:"fov_deg"`
	Background *Background `json:"background,omitempty"`
}

// Background describes what misses look like. Colors are unit scale.
type Background struct {
	Kind   string         `json:"kind"`
	Color  *mathutil.Vec3 `json:"color,omitempty"`
	Top    *mathutil.Vec3 `json:"top,omitempty"`
	Bottom *mathutil.Vec3 `json:"bottom,omitempty"`
}

// Sphere places a sphere by translation, Euler rotation and scale.
type Sphere struct {
	Center      mathutil.Vec3  `json:"center"`
	Radius      float64        `json:"radius"`
	RotationDeg mathutil.Vec3  `json:"rotation_deg"`
	Scale       *mathutil.Vec3 `json:"scale,omitempty"`
	Shader      *Shader        `json:"shader,omitempty"`
}

// Shader picks how a sphere is colored. Saturation and Value default to 1.
type Shader struct {
	Kind       string         `json:"kind"`
	Color      *mathutil.Vec3 `json:"color,omitempty"`
	Saturation *float64       `json:"saturation,omitempty"`
	Value      *float64       `json:"value,omitempty"`
	Texture    string         `json:"texture,omitempty"`
}

// Load reads and validates a scene file. A scene without a name is named
// after the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ranges and kinds without building anything.
func (s *Scene) Validate() error {
	c := s.Camera
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: camera size %dx%d", ErrInvalidScene, c.Width, c.Height)
	}
	if !(c.FOVDeg > 0 && c.FOVDeg < 180) {
		return fmt.Errorf("%w: camera fov_deg %g outside (0, 180)", ErrInvalidScene, c.FOVDeg)
	}
	if bg := c.Background; bg != nil {
		switch bg.Kind {
		case "", BackgroundDirection:
		case BackgroundSolid:
			if bg.Color == nil {
				return fmt.Errorf("%w: solid background needs a color", ErrInvalidScene)
			}
		case BackgroundGradient:
			if bg.Top == nil || bg.Bottom == nil {
				return fmt.Errorf("%w: gradient background needs top and bottom", ErrInvalidScene)
			}
		default:
			return fmt.Errorf("%w: unknown background kind %q", ErrInvalidScene, bg.Kind)
		}
	}
	for i, sp := range s.Spheres {
		if !(sp.Radius > 0) {
			return fmt.Errorf("%w: sphere %d radius %g", ErrInvalidScene, i, sp.Radius)
		}
		if sp.Scale != nil && (sp.Scale[0] == 0 || sp.Scale[1] == 0 || sp.Scale[2] == 0) {
			return fmt.Errorf("%w: sphere %d has a zero scale component", ErrInvalidScene, i)
		}
		if sh := sp.Shader; sh != nil {
			switch sh.Kind {
			case "", ShaderNormal, ShaderHue:
			case ShaderSolid:
				if sh.Color == nil {
					return fmt.Errorf("%w: sphere %d solid shader needs a color", ErrInvalidScene, i)
				}
			case ShaderTexture:
				if sh.Texture == "" {
					return fmt.Errorf("%w: sphere %d texture shader needs a texture", ErrInvalidScene, i)
				}
			default:
				return fmt.Errorf("%w: sphere %d unknown shader kind %q", ErrInvalidScene, i, sh.Kind)
			}
		}
	}
	return nil
}

// Demo returns a small sphere straight ahead of a 320×180, 75° camera.
func Demo() *Scene {
	return &Scene{
		Name:    "demo",
		Camera:  Camera{Width: 320, Height: 180, FOVDeg: 75},
		Spheres: []Sphere{{Center: mathutil.Vec3{0, 0, 2}, Radius: 0.5}},
	}
}
