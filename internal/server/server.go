package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ironsheep/palette-mcp/internal/imaging"
)

// maxRequestSize bounds a single request line. pixels_palette carries raw
// pixel data inline.
const maxRequestSize = 16 * 1024 * 1024

const protocolVersion = "2024-11-05"

// ServerVersion is reported in the initialize handshake.
var ServerVersion = "0.1.0"

// Server answers MCP requests against a shared image cache.
type Server struct {
	cache *imaging.ImageCache

	// Debug enables per-request tracing on the standard logger.
	Debug bool
}

// New creates a server with an empty image cache.
func New() *Server {
	return &Server{
		cache: imaging.NewImageCache(),
	}
}

// Run serves requests from stdin until EOF, answering on stdout.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve processes newline-delimited requests from r until EOF, writing one
// response per line to w. Notifications get no response; a line that is
// not valid JSON gets a parse error with a null id.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.handleLine(line)
		if resp == nil {
			continue
		}
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

func (s *Server) handleLine(line []byte) *MCPResponse {
	var req MCPRequest
	if err := json.Unmarshal(line, &req); err != nil {
		log.Printf("Failed to parse request: %v", err)
		return errorResponse(nil, codeParseError, "Parse error", err.Error())
	}
	return s.handleRequest(&req)
}

// handleRequest routes a request to its method handler.
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	if s.Debug {
		start := time.Now()
		defer func() {
			log.Printf("%s id=%v took %s", req.Method, req.ID, time.Since(start))
		}()
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return resultResponse(req.ID, map[string]interface{}{})
	}

	// Client notifications (initialized, cancelled, ...) need no answer.
	if strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}
	return errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return resultResponse(req.ID, map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    "palette-mcp",
			"version": ServerVersion,
		},
	})
}
