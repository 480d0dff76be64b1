package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Name       string  `json:"name"`
	Scene      string  `json:"scene"`
	Image      string  `json:"image"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	DurationMS float64 `json:"duration_ms"`
}

// WriteManifest writes the successful results to path as JSON, creating the
// directory if needed. Image paths are relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		img := r.Output
		if rel, err := filepath.Rel(dir, r.Output); err == nil {
			img = filepath.ToSlash(rel)
		}
		entries = append(entries, ManifestEntry{
			Name:       r.Name,
			Scene:      r.Scene,
			Image:      img,
			Width:      r.Width,
			Height:     r.Height,
			DurationMS: float64(r.Duration.Microseconds()) / 1000,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("batch: manifest dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
