package texture

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"gpro-raytracer/internal/logging"
)

// ErrNotFound is returned when a texture name matches no indexed file.
var ErrNotFound = errors.New("texture: not found")

// Resolver resolves a texture name to a decoded image.
type Resolver interface {
	Resolve(texName string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache. Each file is decoded at most
// once; decode failures are cached too.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	if index == nil {
		index = NewIndex()
	}
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) (*image.NRGBA, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, texName)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: decode outside the lock
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	if err != nil {
		logging.Logger().Warn("texture: load failed", "path", path, "err", err)
	} else {
		logging.Logger().Debug("texture: loaded", "path", path, "size", img.Bounds().Size())
	}
	return img, err
}

// Len returns the number of cached files, including failed ones.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
