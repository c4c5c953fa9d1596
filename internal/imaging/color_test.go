package imaging

import (
	"testing"

	"github.com/ironsheep/palette-mcp/internal/palette"
)

func TestNewColorResult(t *testing.T) {
	result := NewColorResult(palette.Color{R: 255, G: 128, B: 64})

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
}

func TestNewColorResult_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   palette.Color
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", palette.Color{R: 255}, "#FF0000", HSLColor{H: 0, S: 100, L: 50}},
		{"pure green", palette.Color{G: 255}, "#00FF00", HSLColor{H: 120, S: 100, L: 50}},
		{"pure blue", palette.Color{B: 255}, "#0000FF", HSLColor{H: 240, S: 100, L: 50}},
		{"white", palette.Color{R: 255, G: 255, B: 255}, "#FFFFFF", HSLColor{H: 0, S: 0, L: 100}},
		{"black", palette.Color{}, "#000000", HSLColor{H: 0, S: 0, L: 0}},
		{"gray", palette.Color{R: 128, G: 128, B: 128}, "#808080", HSLColor{H: 0, S: 0, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewColorResult(tt.color)

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.Hex != tt.color.Hex() {
				t.Errorf("Hex disagrees with palette.Color.Hex: %s vs %s", result.Hex, tt.color.Hex())
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}
