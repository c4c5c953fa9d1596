package imaging

import (
	"cmp"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/palette-mcp/internal/palette"
)

// Defaults applied by ExtractPalette when options are left zero.
const (
	DefaultPaletteCount = 10
	DefaultQuality      = 10
	MaxPaletteColors    = 255
)

// PaletteOptions controls palette extraction.
type PaletteOptions struct {
	// Count is the maximum number of palette colors (2-255). Zero selects
	// DefaultPaletteCount.
	Count int

	// Quality is the sampling step in pixels (1-10). 1 reads every pixel,
	// 10 every tenth. Zero selects DefaultQuality.
	Quality int

	// Region restricts extraction to part of the image. Nil means the
	// whole image.
	Region *Region

	// MaxDimension downscales the (cropped) image so that neither side
	// exceeds it before sampling. Zero disables downscaling.
	MaxDimension int
}

// PaletteColor is a single palette entry.
type PaletteColor struct {
	Rank int `json:"rank"` // 1 for the most significant color
	ColorResult
}

// PaletteResult contains the palette of an image, most significant color
// first.
type PaletteResult struct {
	Colors []PaletteColor `json:"colors"`
	Width  int            `json:"width"`  // Width of the sampled area in pixels
	Height int            `json:"height"` // Height of the sampled area in pixels
}

// RGB returns the palette as plain colors in rank order.
func (r *PaletteResult) RGB() []palette.Color {
	colors := make([]palette.Color, len(r.Colors))
	for i, c := range r.Colors {
		colors[i] = palette.Color{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B}
	}
	return colors
}

// PixelData is a non-premultiplied RGBA sample buffer, laid out as
// palette.RGBA, together with the size of the area it was taken from.
type PixelData struct {
	Pix    []byte
	Width  int
	Height int
}

// PixelBuffer converts img into a non-premultiplied RGBA byte buffer
// suitable for palette.Get with palette.RGBA.
//
// Parameters:
//   - img: The source image.
//   - region: Optional area to keep. Nil keeps the whole image.
//   - maxDimension: When positive, the image is shrunk to fit a
//     maxDimension x maxDimension box, preserving aspect ratio.
//
// # Errors
//
//   - Returns error if the region lies outside the image bounds
//   - Returns error if the region is empty (x1 >= x2 or y1 >= y2)
func PixelBuffer(img image.Image, region *Region, maxDimension int) (*PixelData, error) {
	src := img

	if region != nil {
		if err := region.within(img.Bounds()); err != nil {
			return nil, err
		}
		src = imaging.Crop(img, region.rect())
	}

	if maxDimension > 0 {
		b := src.Bounds()
		if b.Dx() > maxDimension || b.Dy() > maxDimension {
			// Box filtering only averages source pixels, no ringing.
			src = imaging.Fit(src, maxDimension, maxDimension, imaging.Box)
		}
	}

	nrgba := imaging.Clone(src)
	return &PixelData{Pix: nrgba.Pix, Width: nrgba.Rect.Dx(), Height: nrgba.Rect.Dy()}, nil
}

// Palette quantizes the buffer into at most count colors. Zero count or
// quality selects the default.
func (p *PixelData) Palette(count, quality int) (*PaletteResult, error) {
	if count == 0 {
		count = DefaultPaletteCount
	}
	if quality == 0 {
		quality = DefaultQuality
	}
	if err := validatePaletteArgs(count, quality); err != nil {
		return nil, err
	}

	colors, err := palette.Get(p.Pix, palette.RGBA, quality, count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}
	return newPaletteResult(colors, p.Width, p.Height), nil
}

// Dominant returns the most representative color of the buffer.
func (p *PixelData) Dominant(quality int) (*ColorResult, error) {
	if quality == 0 {
		quality = DefaultQuality
	}
	if err := validatePaletteArgs(palette.MinColors, quality); err != nil {
		return nil, err
	}

	c, err := palette.Dominant(p.Pix, palette.RGBA, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to find dominant color: %w", err)
	}

	result := NewColorResult(c)
	return &result, nil
}

// ExtractPalette computes the representative color palette of an image
// using median-cut quantization.
//
// Parameters:
//   - img: The source image to analyze.
//   - opts: Extraction options. Zero values select the defaults.
//
// Returns:
//   - *PaletteResult: Up to opts.Count colors, most significant first.
//     Images with few distinct colors produce shorter palettes.
//   - error: Non-nil if the options are out of range, the region is
//     invalid, or no usable pixel was found (fully transparent or white
//     images).
//
// # Sampling
//
// Pixels with alpha below 125 and near-white pixels (all channels above
// 250) never contribute to the palette.
func ExtractPalette(img image.Image, opts PaletteOptions) (*PaletteResult, error) {
	if err := validatePaletteArgs(cmp.Or(opts.Count, DefaultPaletteCount), cmp.Or(opts.Quality, DefaultQuality)); err != nil {
		return nil, err
	}

	pd, err := PixelBuffer(img, opts.Region, opts.MaxDimension)
	if err != nil {
		return nil, err
	}
	return pd.Palette(opts.Count, opts.Quality)
}

// DominantColor returns the single most representative color of an image
// or region.
func DominantColor(img image.Image, quality int, region *Region) (*ColorResult, error) {
	if err := validatePaletteArgs(palette.MinColors, cmp.Or(quality, DefaultQuality)); err != nil {
		return nil, err
	}

	pd, err := PixelBuffer(img, region, 0)
	if err != nil {
		return nil, err
	}
	return pd.Dominant(quality)
}

func newPaletteResult(colors []palette.Color, w, h int) *PaletteResult {
	result := &PaletteResult{
		Colors: make([]PaletteColor, len(colors)),
		Width:  w,
		Height: h,
	}
	for i, c := range colors {
		result.Colors[i] = PaletteColor{Rank: i + 1, ColorResult: NewColorResult(c)}
	}
	return result
}

func validatePaletteArgs(count, quality int) error {
	if count < palette.MinColors || count > MaxPaletteColors {
		return fmt.Errorf("color count %d out of range [%d, %d]", count, palette.MinColors, MaxPaletteColors)
	}
	if quality < palette.MinQuality || quality > palette.MaxQuality {
		return fmt.Errorf("quality %d out of range [%d, %d]", quality, palette.MinQuality, palette.MaxQuality)
	}
	return nil
}

// PaletteFromPixels computes the palette of an already-decoded pixel buffer.
//
// Parameters:
//   - pixels: Interleaved samples laid out as described by format.
//   - format: Channel layout of pixels.
//   - count, quality: As in PaletteOptions; zero selects the default.
//
// Returns error if the arguments are out of range, the buffer length is not
// a multiple of the format's channel count, or no usable pixel was found.
func PaletteFromPixels(pixels []byte, format palette.ColorFormat, count, quality int) (*PaletteResult, error) {
	if count == 0 {
		count = DefaultPaletteCount
	}
	if quality == 0 {
		quality = DefaultQuality
	}
	if err := validatePaletteArgs(count, quality); err != nil {
		return nil, err
	}
	if len(pixels)%format.Channels() != 0 {
		return nil, fmt.Errorf("pixel buffer length %d is not a multiple of %d (%s)", len(pixels), format.Channels(), format)
	}

	colors, err := palette.Get(pixels, format, quality, count)
	if err != nil {
		return nil, fmt.Errorf("failed to extract palette: %w", err)
	}

	return newPaletteResult(colors, 0, 0), nil
}
