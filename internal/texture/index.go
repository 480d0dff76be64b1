package texture

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// extRank orders formats when two files share a stem. Lower wins; lossless
// formats beat JPEG.
var extRank = map[string]int{
	".png":  0,
	".webp": 1,
	".tga":  2,
	".bmp":  3,
	".jpg":  4,
	".jpeg": 4,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]string)}
}

// BuildIndex walks dir recursively for decodable images. A missing or empty
// dir yields an empty index.
func BuildIndex(dir string) *Index {
	idx := NewIndex()
	if dir == "" {
		return idx
	}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		idx.Add(path)
		return nil
	})
	return idx
}

// Add indexes path under its stem and reports whether it was accepted.
func (idx *Index) Add(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	rank, ok := extRank[ext]
	if !ok {
		return false
	}
	stem := stemOf(path)
	if existing, exists := idx.entries[stem]; exists {
		if extRank[strings.ToLower(filepath.Ext(existing))] <= rank {
			return false
		}
	}
	idx.entries[stem] = path
	return true
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Names may carry a directory and any extension; only the stem is matched.
// A name that is itself an existing file is returned as is.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	if texName == "" {
		return "", false
	}
	if path, ok := idx.entries[stemOf(texName)]; ok {
		return path, true
	}
	if info, err := os.Stat(texName); err == nil && !info.IsDir() {
		return texName, true
	}
	return "", false
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}
