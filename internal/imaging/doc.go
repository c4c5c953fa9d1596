// Package imaging adapts decoded images to the palette quantizer for the MCP
// server.
//
// This package loads and caches images, converts image.Image values into the
// raw pixel buffers the palette package works on, and formats the resulting
// colors for clients. All operations work with standard Go image.Image types
// and use a coordinate system where (0,0) is at the top-left corner, X
// increases rightward, and Y increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Pixel Buffers
//
// PixelBuffer crops, optionally downscales, and converts any image into
// non-premultiplied 8-bit RGBA bytes. Non-premultiplied samples keep the
// alpha threshold of the quantizer meaningful for semi-transparent images.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Palette extraction and
// swatch rendering are stateless and can be called concurrently on different
// images.
//
// # Color Representation
//
// Palette colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or empty regions
//   - Color counts or quality values outside their accepted ranges
//   - Images without a single usable (opaque, non-white) pixel
//   - File I/O errors during image loading
//   - Encoding errors during swatch output
//
// Quantizer errors are wrapped, so errors.Is(err, palette.ErrInvalidVBox)
// still identifies them.
//
// # Performance Considerations
//
// Palette extraction reads every quality-th pixel. For very large images,
// set PaletteOptions.MaxDimension to shrink the image first. ImageCache
// decodes each file once and memoizes the pixel buffer of every
// (region, max dimension) pair requested; Evict() or Clear() release them.
package imaging
