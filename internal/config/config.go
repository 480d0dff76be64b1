package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string   `json:"base_dir"`
	Scenes     []string `json:"scenes"`
	SceneDir   string   `json:"scene_dir"`
	TextureDir string   `json:"texture_dir"`
	OutputDir  string   `json:"output_dir"`

	// Render settings
	Format        string  `json:"format"`
	ColorSpace    float64 `json:"color_space"`
	OutputWidth   int     `json:"output_width"`
	Workers       int     `json:"workers"`
	RenderWorkers int     `json:"render_workers"`
}

// Defaults applied by Resolve.
const (
	DefaultFormat     = "ppm"
	DefaultColorSpace = 255
	DefaultOutputDir  = "renders"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir = filepath.Dir(path)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SceneDir      string
	TextureDir    string
	OutputDir     string
	Format        string
	ColorSpace    float64
	OutputWidth   int
	Workers       int
	RenderWorkers int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.SceneDir != "" {
		c.SceneDir = flags.SceneDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.ColorSpace > 0 {
		c.ColorSpace = flags.ColorSpace
	}
	if flags.OutputWidth > 0 {
		c.OutputWidth = flags.OutputWidth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.RenderWorkers > 0 {
		c.RenderWorkers = flags.RenderWorkers
	}

	// Resolve relative paths against base dir
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	c.SceneDir = c.abs(c.SceneDir)
	c.TextureDir = c.abs(c.TextureDir)
	c.OutputDir = c.abs(c.OutputDir)
	for i, s := range c.Scenes {
		c.Scenes[i] = c.abs(s)
	}

	// Defaults for render settings
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.ColorSpace <= 0 {
		c.ColorSpace = DefaultColorSpace
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.RenderWorkers <= 0 {
		c.RenderWorkers = 1
	}
}

func (c *Config) abs(p string) string {
	if p == "" || c.BaseDir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// ScenePaths returns the explicit scene list followed by every *.json file in
// SceneDir, without duplicates.
func (c *Config) ScenePaths() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, s := range c.Scenes {
		add(s)
	}
	if c.SceneDir != "" {
		entries, err := os.ReadDir(c.SceneDir)
		if err != nil {
			return nil, fmt.Errorf("config: scene dir: %w", err)
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
				found = append(found, filepath.Join(c.SceneDir, e.Name()))
			}
		}
		sort.Strings(found)
		for _, p := range found {
			add(p)
		}
	}
	return out, nil
}
