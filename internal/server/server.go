package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/color-convert-mcp/internal/colorconv"
	"github.com/ironsheep/color-convert-mcp/internal/colorstate"
	"github.com/ironsheep/color-convert-mcp/internal/imaging"
)

// Server name and protocol reported during initialize.
const (
	ServerName      = "color-convert-mcp"
	ProtocolVersion = "2024-11-05"
)

// Config holds the settings a Server is built from.
type Config struct {
	// Rounding is the rule applied to every conversion.
	Rounding colorconv.Rounding

	// Saturation picks the HLS saturation fallback at singular lightness.
	Saturation colorconv.SaturationGuard

	// Initial is the color the server starts with.
	Initial colorconv.RGB

	// Version is reported in serverInfo.
	Version string

	// Debug logs every color change to stderr.
	Debug bool
}

// DefaultConfig starts at mid gray with half-even rounding.
func DefaultConfig() Config {
	return Config{
		Rounding:   colorconv.RoundHalfEven,
		Saturation: colorconv.GuardDenominator,
		Initial:    colorstate.DefaultColor,
		Version:    "0.1.0",
	}
}

// Server handles MCP protocol communication
type Server struct {
	cfg   Config
	conv  colorconv.Converter
	state *colorstate.State
	cache *imaging.ImageCache
}

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

// New creates a server with DefaultConfig.
func New() *Server {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a server from cfg.
func NewWithConfig(cfg Config) *Server {
	conv := colorconv.NewConverter(cfg.Rounding).WithSaturationGuard(cfg.Saturation)
	s := &Server{
		cfg:   cfg,
		conv:  conv,
		state: colorstate.NewState(conv, cfg.Initial),
		cache: imaging.NewImageCache(),
	}

	if cfg.Debug {
		s.state.Subscribe(func(u colorstate.Update) {
			if u.Model == u.Edited {
				log.Printf("color %s set to %v", u.Model, u.Values)
			} else {
				log.Printf("  %s derived as %v", u.Model, u.Values)
			}
		})
	}

	return s
}

// State exposes the color the server is holding.
func (s *Server) State() *colorstate.State {
	return s.state
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve processes line-delimited JSON-RPC requests from r until EOF,
// writing one response per line to w.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			if err := encoder.Encode(s.errorResponse(nil, -32700, "Parse error", err.Error())); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    ServerName,
				"version": s.cfg.Version,
			},
		},
	}
}
