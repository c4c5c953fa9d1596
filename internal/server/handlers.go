package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/palette-mcp/internal/imaging"
	"github.com/ironsheep/palette-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_palette").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with codeToolFailed.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	if s.Debug {
		log.Printf("tools/call %s", params.Name)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.Debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		return errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return resultResponse(req.ID, textContent(result))
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Validates ranges before anything reaches the quantizer
//  4. Loads images from cache as needed
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Palette Operations
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_dominant_color":
		return s.handleImageDominantColor(args)
	case "image_palette_swatch":
		return s.handleImagePaletteSwatch(args)
	case "pixels_palette":
		return s.handlePixelsPalette(args)

	// Cache Management
	case "image_cache_evict":
		return s.handleImageCacheEvict(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Palette Operation Handlers ===

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// resolveRegion picks the sampling area from either explicit coordinates or
// a named area. Both nil and empty mean the whole image.
func resolveRegion(img image.Image, r *regionArgs, area string) (*imaging.Region, error) {
	switch {
	case r != nil && area != "":
		return nil, fmt.Errorf("region and area are mutually exclusive")
	case r != nil:
		return &imaging.Region{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y2}, nil
	case area != "":
		return imaging.NamedRegion(img.Bounds(), area)
	}
	return nil, nil
}

// pixels returns the cached sample buffer for the requested area of the
// image at path.
func (s *Server) pixels(path string, r *regionArgs, area string, maxDimension int) (*imaging.PixelData, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}
	region, err := resolveRegion(img, r, area)
	if err != nil {
		return nil, err
	}
	return s.cache.Pixels(path, region, maxDimension)
}

type imagePaletteArgs struct {
	Path         string      `json:"path"`
	Count        int         `json:"count"`
	Quality      int         `json:"quality"`
	Region       *regionArgs `json:"region,omitempty"`
	Area         string      `json:"area"`
	MaxDimension int         `json:"max_dimension"`
}

// options applies defaults and checks ranges.
func (a *imagePaletteArgs) options() (imaging.PaletteOptions, error) {
	if a.Count == 0 {
		a.Count = imaging.DefaultPaletteCount
	}
	if a.Quality == 0 {
		a.Quality = imaging.DefaultQuality
	}
	if err := validateCountQuality(a.Count, a.Quality); err != nil {
		return imaging.PaletteOptions{}, err
	}
	if a.MaxDimension < 0 {
		return imaging.PaletteOptions{}, fmt.Errorf("max_dimension must be positive, got %d", a.MaxDimension)
	}
	return imaging.PaletteOptions{
		Count:        a.Count,
		Quality:      a.Quality,
		MaxDimension: a.MaxDimension,
	}, nil
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	pd, err := s.pixels(a.Path, a.Region, a.Area, opts.MaxDimension)
	if err != nil {
		return nil, err
	}
	return pd.Palette(opts.Count, opts.Quality)
}

type imageDominantColorArgs struct {
	Path    string      `json:"path"`
	Quality int         `json:"quality"`
	Region  *regionArgs `json:"region,omitempty"`
	Area    string      `json:"area"`
}

func (s *Server) handleImageDominantColor(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Quality == 0 {
		a.Quality = imaging.DefaultQuality
	}
	if err := validateCountQuality(palette.MinColors, a.Quality); err != nil {
		return nil, err
	}
	pd, err := s.pixels(a.Path, a.Region, a.Area, 0)
	if err != nil {
		return nil, err
	}
	return pd.Dominant(a.Quality)
}

type imagePaletteSwatchArgs struct {
	imagePaletteArgs
	CellSize    int    `json:"cell_size"`
	BorderColor string `json:"border_color"`
}

func (s *Server) handleImagePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a imagePaletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = imaging.DefaultSwatchCellSize
	}
	pd, err := s.pixels(a.Path, a.Region, a.Area, opts.MaxDimension)
	if err != nil {
		return nil, err
	}
	result, err := pd.Palette(opts.Count, opts.Quality)
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(result.RGB(), a.CellSize, a.BorderColor)
}

type pixelsPaletteArgs struct {
	PixelsBase64 string `json:"pixels_base64"`
	Format       string `json:"format"`
	Count        int    `json:"count"`
	Quality      int    `json:"quality"`
}

func (s *Server) handlePixelsPalette(args json.RawMessage) (interface{}, error) {
	var a pixelsPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "rgba"
	}
	if a.Count == 0 {
		a.Count = imaging.DefaultPaletteCount
	}
	if a.Quality == 0 {
		a.Quality = imaging.DefaultQuality
	}
	if err := validateCountQuality(a.Count, a.Quality); err != nil {
		return nil, err
	}
	format, err := palette.ParseColorFormat(a.Format)
	if err != nil {
		return nil, err
	}
	pixels, err := base64.StdEncoding.DecodeString(a.PixelsBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid pixels_base64: %w", err)
	}
	return imaging.PaletteFromPixels(pixels, format, a.Count, a.Quality)
}

// validateCountQuality rejects values the quantizer would panic on.
func validateCountQuality(count, quality int) error {
	if count < palette.MinColors || count > imaging.MaxPaletteColors {
		return fmt.Errorf("count must be between %d and %d, got %d", palette.MinColors, imaging.MaxPaletteColors, count)
	}
	if quality < palette.MinQuality || quality > palette.MaxQuality {
		return fmt.Errorf("quality must be between %d and %d, got %d", palette.MinQuality, palette.MaxQuality, quality)
	}
	return nil
}

// === Cache Management Handlers ===

type imageCacheEvictArgs struct {
	Path string `json:"path"`
}

type cacheEvictResult struct {
	Evicted string `json:"evicted"` // the path, or "all"
}

// handleImageCacheEvict drops one image and its sample buffers, or the
// whole cache when no path is given.
func (s *Server) handleImageCacheEvict(args json.RawMessage) (interface{}, error) {
	var a imageCacheEvictArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if a.Path == "" {
		s.cache.Clear()
		return cacheEvictResult{Evicted: "all"}, nil
	}
	s.cache.Evict(a.Path)
	return cacheEvictResult{Evicted: a.Path}, nil
}
