package server

import (
	"github.com/ironsheep/palette-mcp/internal/imaging"
	"github.com/ironsheep/palette-mcp/internal/palette"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file into the cache and describe it: dimensions, detected format, color depth, alpha and file size.",
			InputSchema: objectSchema(map[string]interface{}{"path": pathSchema()}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: objectSchema(map[string]interface{}{"path": pathSchema()}, "path"),
		},

		// Palette Operations
		{
			Name:        "image_palette",
			Description: "Extract a color palette from an image using median-cut quantization. Colors are ordered from most to least representative, each with hex, RGB and HSL values. Near-white and transparent pixels are ignored.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":          pathSchema(),
				"count":         countSchema(),
				"quality":       qualitySchema(),
				"region":        regionSchema(),
				"area":          areaSchema(),
				"max_dimension": maxDimensionSchema(),
			}, "path"),
		},
		{
			Name:        "image_dominant_color",
			Description: "Get the single most representative color of an image or region.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":    pathSchema(),
				"quality": qualitySchema(),
				"region":  regionSchema(),
				"area":    areaSchema(),
			}, "path"),
		},
		{
			Name:        "image_palette_swatch",
			Description: "Extract a color palette and render it as a strip of colored squares, returned as base64-encoded PNG together with the colors.",
			InputSchema: objectSchema(map[string]interface{}{
				"path":          pathSchema(),
				"count":         countSchema(),
				"quality":       qualitySchema(),
				"region":        regionSchema(),
				"area":          areaSchema(),
				"max_dimension": maxDimensionSchema(),
				"cell_size": map[string]interface{}{
					"type":        "integer",
					"description": "Side of each color square in pixels. Default 32",
					"default":     imaging.DefaultSwatchCellSize,
				},
				"border_color": map[string]interface{}{
					"type":        "string",
					"description": "Optional border color in hex format (#RRGGBB). Omit for no border",
				},
			}, "path"),
		},
		{
			Name:        "pixels_palette",
			Description: "Extract a color palette from raw, already-decoded pixel bytes. Use this when pixel data comes from somewhere other than an image file.",
			InputSchema: objectSchema(map[string]interface{}{
				"pixels_base64": map[string]interface{}{
					"type":        "string",
					"description": "Base64-encoded interleaved pixel bytes, row-major, no padding",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"rgb", "rgba", "argb", "bgr", "bgra"},
					"description": "Channel layout of the pixel bytes. Default rgba",
					"default":     "rgba",
				},
				"count":   countSchema(),
				"quality": qualitySchema(),
			}, "pixels_base64"),
		},

		// Cache Management
		{
			Name:        "image_cache_evict",
			Description: "Forget a cached image and the sample buffers computed from it, e.g. after the file changed on disk. Without a path the whole cache is cleared.",
			InputSchema: objectSchema(map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Optional: path exactly as passed to the other tools",
				},
			}),
		},
	}
}

func objectSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func pathSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func countSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of palette colors (2-255). Default 10",
		"default":     imaging.DefaultPaletteCount,
		"minimum":     palette.MinColors,
		"maximum":     imaging.MaxPaletteColors,
	}
}

func qualitySchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Sampling step: 1 reads every pixel, 10 reads every tenth. Default 10",
		"default":     imaging.DefaultQuality,
		"minimum":     palette.MinQuality,
		"maximum":     palette.MaxQuality,
	}
}

func maxDimensionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Optional: downscale so neither side exceeds this many pixels before sampling",
	}
}

func areaSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        imaging.AreaNames,
		"description": "Optional: limit analysis to a named area instead of explicit region coordinates",
	}
}

func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Optional: limit analysis to this region",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
