package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageCache keeps decoded images, and the sample buffers palette requests
// derive from them, keyed by file path.
//
// A file is decoded once. Each distinct (region, max dimension) sampling of
// it is converted to NRGBA once, so asking for a palette and then a swatch
// or dominant color of the same area reuses the buffer.
//
// Paths are used verbatim: a relative and an absolute path to the same file
// are separate entries. Entries stay until Evict or Clear.
//
// ImageCache is safe for concurrent use.
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	img    image.Image
	format string // decoder name, e.g. "png"
	size   int64  // file size in bytes

	// Guarded by ImageCache.mu.
	buffers map[bufferKey]*PixelData
}

// bufferKey identifies one sampling of an image. The zero Region with
// cropped unset stands for the whole image.
type bufferKey struct {
	region       Region
	cropped      bool
	maxDimension int
}

func newBufferKey(region *Region, maxDimension int) bufferKey {
	k := bufferKey{maxDimension: max(maxDimension, 0)}
	if region != nil {
		k.region = *region
		k.cropped = true
	}
	return k
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]*cacheEntry),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The format is
// detected from the file contents, not its extension.
func (c *ImageCache) Load(path string) (image.Image, error) {
	e, err := c.entry(path)
	if err != nil {
		return nil, err
	}
	return e.img, nil
}

// Pixels returns the NRGBA sample buffer of the image at path, cropped to
// region and shrunk to maxDimension as PixelBuffer does. Buffers are
// memoized per path, region and maxDimension; callers must not modify the
// returned Pix slice.
func (c *ImageCache) Pixels(path string, region *Region, maxDimension int) (*PixelData, error) {
	e, err := c.entry(path)
	if err != nil {
		return nil, err
	}

	key := newBufferKey(region, maxDimension)
	c.mu.RLock()
	pd, ok := e.buffers[key]
	c.mu.RUnlock()
	if ok {
		return pd, nil
	}

	pd, err = PixelBuffer(e.img, region, maxDimension)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if cached, ok := e.buffers[key]; ok {
		pd = cached
	} else {
		e.buffers[key] = pd
	}
	c.mu.Unlock()

	return pd, nil
}

// entry returns the cache entry for path, decoding the file if needed.
// Concurrent first loads of one path may both decode; the first stored
// entry wins.
func (c *ImageCache) entry(path string) (*cacheEntry, error) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok {
		return e, nil
	}

	e, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[path]; ok {
		return existing, nil
	}
	c.entries[path] = e
	return e, nil
}

func decodeFile(path string) (*cacheEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &cacheEntry{
		img:     img,
		format:  format,
		size:    stat.Size(),
		buffers: make(map[bufferKey]*PixelData),
	}, nil
}

// Clear drops every image and sample buffer.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*cacheEntry)
	c.mu.Unlock()
}

// Evict drops the image at path and its sample buffers. Unknown paths are
// ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
