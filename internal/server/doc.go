// Package server implements the MCP (Model Context Protocol) server for color
// palette extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes median-cut palette
// quantization through the MCP protocol, so MCP-compatible clients can ask
// for the representative colors of an image file or a raw pixel buffer.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Palette Operations:
//   - image_palette: Extract a ranked color palette
//   - image_dominant_color: Get the single most representative color
//   - image_palette_swatch: Render the palette as a PNG strip
//   - pixels_palette: Extract a palette from raw pixel bytes
//
// Cache Management:
//   - image_cache_evict: Forget one cached image, or all of them
//
// Count and quality arguments are range-checked here before anything reaches
// the quantizer.
//
// # Image Caching
//
// The server keeps decoded images, and the RGBA sample buffers derived from
// them for each requested region and max_dimension, in an imaging.ImageCache.
// A palette followed by a dominant color or swatch of the same area decodes
// and converts the file once. Entries live until image_cache_evict drops
// them.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//     (-32700 for lines that are not JSON, -32601, -32602)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Set Server.Debug to log every request method, tool name and duration to
// the standard logger. Nothing is ever written to stdout except responses.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
