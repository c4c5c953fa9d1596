package palette

import (
	"fmt"
	"strings"
)

// ColorFormat identifies the channel order and channel count of a raw,
// interleaved pixel buffer.
type ColorFormat int

// Supported pixel layouts. Formats without an alpha channel are treated as
// fully opaque.
const (
	RGB ColorFormat = iota
	RGBA
	ARGB
	BGR
	BGRA
)

// Channels returns the number of bytes a single pixel occupies.
func (f ColorFormat) Channels() int {
	switch f {
	case RGB, BGR:
		return 3
	default:
		return 4
	}
}

func (f ColorFormat) String() string {
	switch f {
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	case ARGB:
		return "argb"
	case BGR:
		return "bgr"
	case BGRA:
		return "bgra"
	default:
		return fmt.Sprintf("ColorFormat(%d)", int(f))
	}
}

// ParseColorFormat maps a case-insensitive layout name ("rgb", "rgba",
// "argb", "bgr", "bgra") to its ColorFormat.
func ParseColorFormat(s string) (ColorFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb":
		return RGB, nil
	case "rgba":
		return RGBA, nil
	case "argb":
		return ARGB, nil
	case "bgr":
		return BGR, nil
	case "bgra":
		return BGRA, nil
	default:
		return 0, fmt.Errorf("unknown color format: %q (valid formats: rgb, rgba, argb, bgr, bgra)", s)
	}
}

// parts extracts the red, green, blue and alpha bytes of the pixel that
// starts at pos.
func (f ColorFormat) parts(pixels []byte, pos int) (r, g, b, a uint8) {
	switch f {
	case RGB:
		return pixels[pos], pixels[pos+1], pixels[pos+2], 255
	case RGBA:
		return pixels[pos], pixels[pos+1], pixels[pos+2], pixels[pos+3]
	case ARGB:
		return pixels[pos+1], pixels[pos+2], pixels[pos+3], pixels[pos]
	case BGR:
		return pixels[pos+2], pixels[pos+1], pixels[pos], 255
	case BGRA:
		return pixels[pos+2], pixels[pos+1], pixels[pos], pixels[pos+3]
	default:
		panic(fmt.Sprintf("palette: unsupported color format %d", int(f)))
	}
}
