package imaging

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/palette-mcp/internal/palette"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a palette color in multiple representations.
//
// Palette colors are always opaque, so no alpha component is reported:
//   - Hex: Compact string format for CSS/web usage
//   - RGB: Standard 8-bit components
//   - HSL: Perceptual color space for intuitive color operations
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// NewColorResult converts a palette color into its reported representations.
//
// HSL values are rounded to whole degrees and percentages.
func NewColorResult(c palette.Color) ColorResult {
	cf := toColorful(c)
	h, s, l := cf.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		RGB: RGBColor{R: c.R, G: c.G, B: c.B},
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

func toColorful(c palette.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
