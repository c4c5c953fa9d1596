package imaging

import (
	"fmt"
	"image"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// AreaNames lists the names accepted by NamedRegion.
var AreaNames = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// NamedRegion resolves a named area of bounds to a Region.
//
// Supported names:
//   - "top-left", "top-right", "bottom-left", "bottom-right": Quarter sections
//   - "top-half", "bottom-half": Horizontal halves
//   - "left-half", "right-half": Vertical halves
//   - "center": Center 50% of the image (25% margin on each side)
//
// The returned coordinates are absolute, so they stay valid for images whose
// bounds do not start at (0,0). Returns error for unknown names.
func NamedRegion(bounds image.Rectangle, name string) (*Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return nil, fmt.Errorf("unknown area: %s", name)
	}

	return &Region{
		X1: bounds.Min.X + x1,
		Y1: bounds.Min.Y + y1,
		X2: bounds.Min.X + x2,
		Y2: bounds.Min.Y + y2,
	}, nil
}

// within reports an error if r is empty or extends past bounds.
func (r *Region) within(bounds image.Rectangle) error {
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return nil
}

func (r *Region) rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}
