package server

import "encoding/json"

const jsonRPCVersion = "2.0"

// JSON-RPC error codes returned by the server.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func resultResponse(id, result interface{}) *MCPResponse {
	return &MCPResponse{JSONRPC: jsonRPCVersion, ID: id, Result: result}
}

// errorResponse creates a JSON-RPC error response. An empty data is
// omitted from the wire.
func errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{JSONRPC: jsonRPCVersion, ID: id, Error: e}
}

// textContent wraps a tool result in MCP's content envelope:
//
//	{"content": [{"type": "text", "text": "<indented JSON>"}]}
func textContent(v interface{}) map[string]interface{} {
	b, _ := json.MarshalIndent(v, "", "  ")
	return map[string]interface{}{
		"content": []map[string]interface{}{
			{"type": "text", "text": string(b)},
		},
	}
}
