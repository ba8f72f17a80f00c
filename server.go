package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// MCPServer handles MCP protocol over stdio. Requests are processed one at a
// time: a tool call runs to completion before the next line is read.
type MCPServer struct {
	cfg         *Config
	connector   Connector
	registry    *toolRegistry
	initialized bool
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewMCPServer creates a server over the given connector. No connection is
// opened here; each tool call acquires and releases its own session.
func NewMCPServer(ctx context.Context, cfg *Config, connector Connector) *MCPServer {
	serverCtx, serverCancel := context.WithCancel(ctx)

	executor := NewExecutor(connector, cfg.MaxRows)

	return &MCPServer{
		cfg:       cfg,
		connector: connector,
		registry:  newToolRegistry(executor),
		ctx:       serverCtx,
		cancel:    serverCancel,
	}
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *MCPServer) Run() error {
	reader := bufio.NewReader(os.Stdin)

	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		response := s.handleMessage([]byte(line))
		if response != nil {
			responseBytes, err := json.Marshal(response)
			if err != nil {
				logError("Failed to marshal response: %v", err)
				continue
			}
			fmt.Println(string(responseBytes))
		}
	}
}

func (s *MCPServer) handleMessage(data []byte) *JSONRPCResponse {
	var req JSONRPCRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      nil,
			Error: &Error{
				Code:    ParseError,
				Message: "Parse error",
				Data:    err.Error(),
			},
		}
	}

	if req.JSONRPC != "2.0" {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &Error{
				Code:    InvalidRequest,
				Message: "Invalid JSON-RPC version",
			},
		}
	}

	return s.handleRequest(&req)
}

func (s *MCPServer) handleRequest(req *JSONRPCRequest) *JSONRPCResponse {
	var result any
	var err *Error

	switch req.Method {
	case "initialize":
		result, err = s.handleInitialize(req.Params)
	case "initialized":
		// Notification, no response needed
		return nil
	case "tools/list":
		result, err = s.handleListTools()
	case "tools/call":
		result, err = s.handleCallTool(req.Params)
	case "resources/list":
		result, err = s.handleListResources()
	case "resources/read":
		result, err = s.handleReadResource(req.Params)
	case "ping":
		result = map[string]any{}
	default:
		err = &Error{
			Code:    MethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
	}

	if err != nil {
		return &JSONRPCResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   err,
		}
	}

	return &JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
	}
}

// Shutdown gracefully shuts down the server
func (s *MCPServer) Shutdown() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Close releases all resources
func (s *MCPServer) Close() error {
	s.Shutdown()
	if c, ok := s.connector.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[oracle-mcp] "+format+"\n", args...)
}
