package palette

import (
	"fmt"
	"math"
	"slices"
)

// Accepted ranges for Get arguments.
const (
	MinQuality = 1
	MaxQuality = 10
	MinColors  = 2
)

const (
	fractionByPopulation = 0.75
	dominantPaletteSize  = 5
)

// Get returns a palette of at most maxColors representative colors of
// pixels, most significant first.
//
// pixels holds interleaved samples laid out as described by format; its
// length should be a multiple of format.Channels(). quality is the sampling
// step in pixels (1 samples every pixel). Fewer than maxColors colors are
// returned when the image does not hold enough distinct colors.
//
// Get panics if quality is outside [MinQuality, MaxQuality] or maxColors is
// below MinColors. It returns ErrInvalidVBox when every pixel was skipped as
// transparent or white.
func Get(pixels []byte, format ColorFormat, quality, maxColors int) ([]Color, error) {
	if quality < MinQuality || quality > MaxQuality {
		panic(fmt.Sprintf("palette: quality %d out of range [%d, %d]", quality, MinQuality, MaxQuality))
	}
	if maxColors < MinColors {
		panic(fmt.Sprintf("palette: maxColors %d below %d", maxColors, MinColors))
	}

	return quantize(pixels, format, quality, maxColors)
}

// Dominant returns the single most representative color of pixels, which
// is the first entry of a small palette.
func Dominant(pixels []byte, format ColorFormat, quality int) (Color, error) {
	colors, err := Get(pixels, format, quality, dominantPaletteSize)
	if err != nil {
		return Color{}, err
	}
	return colors[0], nil
}

func quantize(pixels []byte, format ColorFormat, quality, maxColors int) ([]Color, error) {
	h, box := buildHistogram(pixels, format, quality)

	// Nothing survived sampling.
	if box.count == 0 {
		return nil, ErrInvalidVBox
	}

	queue := []vbox{box}

	// Round up, as color-thief does.
	target := int(math.Ceil(fractionByPopulation * float64(maxColors)))

	// First set of colors, sorted by population.
	queue, err := iterate(h, queue, byCount, target)
	if err != nil {
		return nil, err
	}

	// Then by population times size in color space.
	slices.SortStableFunc(queue, byProduct)
	queue, err = iterate(h, queue, byProduct, maxColors-len(queue))
	if err != nil {
		return nil, err
	}

	// Highest priority first.
	slices.Reverse(queue)

	colors := make([]Color, 0, min(len(queue), maxColors))
	for _, b := range queue[:min(len(queue), maxColors)] {
		colors = append(colors, b.average)
	}
	return colors, nil
}
