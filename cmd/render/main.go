package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"gpro-raytracer/internal/batch"
	"gpro-raytracer/internal/config"
	"gpro-raytracer/internal/imageio"
	"gpro-raytracer/internal/logging"
	"gpro-raytracer/internal/postprocess"
	"gpro-raytracer/internal/scene"
	"gpro-raytracer/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Render a single scene file")
	demo := flag.Bool("demo", false, "Render the built-in demo scene")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	workers := flag.Int("workers", 0, "Number of scenes rendered at once (default: NumCPU)")
	renderWorkers := flag.Int("render-workers", 0, "Scanline workers per scene (default: 1)")
	sceneDir := flag.String("scenes", "", "Directory of *.json scene files")
	textureDir := flag.String("textures", "", "Texture directory")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: "+strings.Join(imageio.Formats(), ", ")+" (default: ppm)")
	colorSpace := flag.Float64("colorspace", 0, "PPM maxval (default: 255)")
	width := flag.Int("width", 0, "Resize output to this width")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneDir:      *sceneDir,
		TextureDir:    *textureDir,
		OutputDir:     *outputDir,
		Format:        *format,
		ColorSpace:    *colorSpace,
		OutputWidth:   *width,
		Workers:       *workers,
		RenderWorkers: *renderWorkers,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	if *demo {
		if err := renderDemo(ctx, cfg, texCache); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var scenes []string
	if *sceneFile != "" {
		scenes = []string{*sceneFile}
	} else {
		var err error
		scenes, err = cfg.ScenePaths()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing scenes: %v\n", err)
			os.Exit(1)
		}
	}

	// Limit for testing
	if *testN > 0 && *testN < len(scenes) {
		scenes = scenes[:*testN]
	}

	if len(scenes) == 0 {
		fmt.Println("No scenes to render. Use -scene, -scenes, -demo or a config file.")
		os.Exit(0)
	}

	// Print summary
	mode := ""
	if *testN > 0 {
		mode = fmt.Sprintf(" (TEST: first %d)", *testN)
	}

	fmt.Printf("Sphere ray tracer → %s%s\n", cfg.Format, mode)
	fmt.Printf("Scenes: %d, Workers: %d, Scanline workers: %d\n", len(scenes), cfg.Workers, cfg.RenderWorkers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:     cfg.OutputDir,
		Textures:      texCache,
		Format:        cfg.Format,
		ColorSpace:    cfg.ColorSpace,
		OutputWidth:   cfg.OutputWidth,
		Workers:       cfg.Workers,
		RenderWorkers: cfg.RenderWorkers,
		Progress:      os.Stdout,
	}

	results := batch.Run(ctx, batchCfg, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(scenes))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", filepath.Base(e.Scene), e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func renderDemo(ctx context.Context, cfg config.Config, textures texture.Resolver) error {
	built, err := scene.Demo().Build(scene.BuildOptions{
		Textures:   textures,
		ColorSpace: cfg.ColorSpace,
	})
	if err != nil {
		return err
	}
	start := time.Now()
	img, err := built.Camera.RenderContext(ctx, built.Objects, cfg.RenderWorkers)
	if err != nil {
		return err
	}
	if cfg.OutputWidth > 0 {
		if img, err = postprocess.Resize(img, cfg.OutputWidth); err != nil {
			return err
		}
	}
	out := filepath.Join(cfg.OutputDir, batch.OutputName(built.Name, cfg.Format))
	if err := imageio.Write(out, img, cfg.Format); err != nil {
		return err
	}
	fmt.Printf("Demo: %dx%d in %.2fs → %s\n", img.Width, img.Height, time.Since(start).Seconds(), out)
	return nil
}
