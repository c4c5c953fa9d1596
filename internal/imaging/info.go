package imaging

import (
	"image"
)

// ImageInfo describes an image file as seen by the palette tools.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the name of the decoder that read the file: "png", "jpeg",
	// "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// ColorDepth is "16-bit" for 16-bit per channel models, else "8-bit".
	// Palettes are always computed from 8-bit samples.
	ColorDepth string `json:"color_depth"`

	// HasAlpha reports whether the color model can carry transparency.
	HasAlpha bool `json:"has_alpha"`

	// Opaque reports whether every pixel is fully opaque, in which case the
	// alpha threshold never drops a sample.
	Opaque bool `json:"opaque"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads the image at path through cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	e, err := cache.entry(path)
	if err != nil {
		return nil, err
	}

	depth, alpha := colorLayout(e.img)
	b := e.img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        e.format,
		ColorDepth:    depth,
		HasAlpha:      alpha,
		Opaque:        isOpaque(e.img),
		FileSizeBytes: e.size,
	}, nil
}

// colorLayout reports the channel depth of img and whether its model has
// an alpha channel.
func colorLayout(img image.Image) (depth string, alpha bool) {
	switch m := img.(type) {
	case *image.RGBA64, *image.NRGBA64:
		return "16-bit", true
	case *image.Gray16:
		return "16-bit", false
	case *image.RGBA, *image.NRGBA, *image.Alpha:
		return "8-bit", true
	case *image.Paletted:
		// Only palettes with a translucent entry (GIF transparency) count.
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return "8-bit", true
			}
		}
	}
	return "8-bit", false
}

// isOpaque reports whether every pixel of img is fully opaque. Image types
// without an Opaque method are scanned.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the size of the image at path, loading it through
// cache.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &DimensionsResult{Width: b.Dx(), Height: b.Dy()}, nil
}
