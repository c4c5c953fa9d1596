package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/palette-mcp/internal/palette"
)

// DefaultSwatchCellSize is the side of one swatch cell in pixels.
const DefaultSwatchCellSize = 32

// SwatchResult contains a rendered palette strip encoded as base64 PNG.
type SwatchResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	CellSize    int           `json:"cell_size"`
	ImageBase64 string        `json:"image_base64"`
	MimeType    string        `json:"mime_type"`
	Colors      []ColorResult `json:"colors"`
}

// RenderSwatch draws colors as a horizontal strip of square cells.
//
// Parameters:
//   - colors: Palette colors, drawn left to right.
//   - cellSize: Side of each cell in pixels. Zero selects
//     DefaultSwatchCellSize.
//   - borderHex: Optional "#RRGGBB" color of a 1 pixel border drawn around
//     and between cells. Empty draws no border.
//
// Returns error if colors is empty, cellSize is negative, borderHex cannot
// be parsed or PNG encoding fails.
func RenderSwatch(colors []palette.Color, cellSize int, borderHex string) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if cellSize == 0 {
		cellSize = DefaultSwatchCellSize
	}
	if cellSize < 0 {
		return nil, fmt.Errorf("invalid cell size: %d", cellSize)
	}

	border := 0
	var bg color.Color = color.Transparent
	if borderHex != "" {
		c, err := colorful.Hex(borderHex)
		if err != nil {
			return nil, fmt.Errorf("invalid border color %q: %w", borderHex, err)
		}
		r, g, b := c.RGB255()
		bg = color.NRGBA{R: r, G: g, B: b, A: 255}
		border = 1
	}

	width := len(colors)*cellSize + (len(colors)+1)*border
	height := cellSize + 2*border

	canvas := imaging.New(width, height, bg)
	results := make([]ColorResult, len(colors))
	for i, c := range colors {
		cell := imaging.New(cellSize, cellSize, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		canvas = imaging.Paste(canvas, cell, image.Pt(border+i*(cellSize+border), border))
		results[i] = NewColorResult(c)
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       width,
		Height:      height,
		CellSize:    cellSize,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Colors:      results,
	}, nil
}
