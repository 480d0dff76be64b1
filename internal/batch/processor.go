// Package batch renders many scenes with a worker pool.
package batch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gpro-raytracer/internal/imageio"
	"gpro-raytracer/internal/logging"
	"gpro-raytracer/internal/postprocess"
	"gpro-raytracer/internal/scene"
	"gpro-raytracer/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir     string
	Textures      texture.Resolver
	Format        string
	ColorSpace    float64
	OutputWidth   int
	Workers       int
	RenderWorkers int
	// Progress receives periodic rate lines. Nil disables them.
	Progress io.Writer
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name     string
	Scene    string
	Output   string
	Width    int
	Height   int
	Duration time.Duration
	Success  bool
	Error    string
}

// job is a loaded scene with its claimed output path.
type job struct {
	path   string
	scene  *scene.Scene
	output string
}

// Run renders every scene file using a worker pool. Results are in input
// order. Scenes are loaded up front so each gets a distinct output file: a
// repeated name is suffixed _2, _3 and so on in input order. Cancelling ctx
// stops workers from starting new scenes.
func Run(ctx context.Context, cfg Config, scenes []string) []Result {
	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	jobs := make([]*job, total)
	used := make(map[string]bool)
	for i, path := range scenes {
		sc, err := scene.Load(path)
		if err != nil {
			results[i] = failed(Result{Scene: path}, err, time.Now())
			processed.Add(1)
			continue
		}
		name := uniqueName(used, sc.Name)
		if name != sc.Name {
			logging.Logger().Warn("batch: duplicate scene name", "scene", path, "name", sc.Name, "output", name)
		}
		jobs[i] = &job{path: path, scene: sc, output: filepath.Join(cfg.OutputDir, OutputName(name, cfg.Format))}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	sceneChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(ctx, cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i, j := range jobs {
		if j != nil {
			sceneChan <- i
		}
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

func failed(res Result, err error, start time.Time) Result {
	res.Error = err.Error()
	res.Duration = time.Since(start)
	logging.Logger().Warn("batch: scene failed", "scene", res.Scene, "err", err)
	return res
}

func processScene(ctx context.Context, cfg Config, j *job) Result {
	start := time.Now()
	sc := j.scene
	res := Result{Name: sc.Name, Scene: j.path}
	fail := func(err error) Result {
		return failed(res, err, start)
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	built, err := sc.Build(scene.BuildOptions{
		Textures:   cfg.Textures,
		ColorSpace: cfg.ColorSpace,
	})
	if err != nil {
		return fail(err)
	}

	img, err := built.Camera.RenderContext(ctx, built.Objects, cfg.RenderWorkers)
	if err != nil {
		return fail(err)
	}

	// Post-processing: output size
	if cfg.OutputWidth > 0 {
		if img, err = postprocess.Resize(img, cfg.OutputWidth); err != nil {
			return fail(err)
		}
	}

	out := j.output
	if err := imageio.Write(out, img, cfg.Format); err != nil {
		return fail(err)
	}

	res.Output = out
	res.Width, res.Height = img.Width, img.Height
	res.Success = true
	res.Duration = time.Since(start)
	logging.Logger().Debug("batch: scene rendered", "scene", sc.Name, "output", out, "duration", res.Duration)
	return res
}

// uniqueName returns name, or name with the first free numeric suffix.
// Names are compared case-insensitively for case-folding filesystems.
func uniqueName(used map[string]bool, name string) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		candidate = fmt.Sprintf("%s_%d", name, n)
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

// OutputName is the file name a scene is written under.
func OutputName(sceneName, format string) string {
	return sceneName + imageio.Ext(format)
}
