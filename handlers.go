package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

func (s *MCPServer) handleInitialize(params json.RawMessage) (*InitializeResult, *Error) {
	var initParams InitializeParams
	if params != nil {
		if err := json.Unmarshal(params, &initParams); err != nil {
			return nil, &Error{
				Code:    InvalidParams,
				Message: "Invalid initialize parameters",
				Data:    err.Error(),
			}
		}
	}

	s.initialized = true

	return &InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: ServerCapabilities{
			Tools:     &ToolsCapability{},
			Resources: &ResourcesCapability{},
		},
		ServerInfo: ServerInfo{
			Name:    s.cfg.ServerName,
			Version: s.cfg.ServerVersion,
		},
	}, nil
}

func (s *MCPServer) handleListTools() (*ListToolsResult, *Error) {
	return &ListToolsResult{Tools: s.registry.Tools()}, nil
}

// handleCallTool routes a tool call to its registered handler. Classified
// failures keep their code; anything unexpected becomes InternalError.
func (s *MCPServer) handleCallTool(params json.RawMessage) (*CallToolResult, *Error) {
	var callParams CallToolParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return nil, &Error{
			Code:    InvalidParams,
			Message: "Invalid parameters",
			Data:    err.Error(),
		}
	}

	handler, ok := s.registry.Lookup(callParams.Name)
	if !ok {
		return nil, &Error{
			Code:    MethodNotFound,
			Message: fmt.Sprintf("Unknown tool: %s", callParams.Name),
		}
	}

	args := callParams.Arguments
	if args == nil {
		args = map[string]any{}
	}

	result, err := handler(s.ctx, args)
	if err != nil {
		return nil, toRPCError(err)
	}
	return result, nil
}

func toRPCError(err error) *Error {
	var te *ToolError
	if errors.As(err, &te) {
		return &Error{Code: te.Code, Message: te.Message}
	}
	return &Error{Code: InternalError, Message: err.Error()}
}

func (s *MCPServer) handleListResources() (*ListResourcesResult, *Error) {
	conn, err := s.connector.Connect(s.ctx)
	if err != nil {
		return nil, toRPCError(connectFailure(err))
	}
	defer conn.Close()

	rs, err := conn.Query(s.ctx, listTablesSQL)
	if err != nil {
		return nil, &Error{
			Code:    InternalError,
			Message: fmt.Sprintf("Failed to list tables: %v", err),
		}
	}

	owner := strings.ToUpper(s.cfg.User)
	resources := make([]Resource, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		tableName := fmt.Sprint(row[0])
		resources = append(resources, Resource{
			URI:      fmt.Sprintf("oracle://%s/%s/schema", owner, tableName),
			Name:     fmt.Sprintf("Schema for table '%s'", tableName),
			MimeType: "application/json",
		})
	}

	return &ListResourcesResult{Resources: resources}, nil
}

func (s *MCPServer) handleReadResource(params json.RawMessage) (*ReadResourceResult, *Error) {
	var readParams ReadResourceParams
	if err := json.Unmarshal(params, &readParams); err != nil {
		return nil, &Error{
			Code:    InvalidParams,
			Message: "Invalid parameters",
			Data:    err.Error(),
		}
	}

	// URI format: oracle://owner/tablename/schema
	uri := readParams.URI
	if !strings.HasPrefix(uri, "oracle://") {
		return nil, &Error{
			Code:    InvalidParams,
			Message: "Invalid resource URI: must start with oracle://",
		}
	}

	parts := strings.Split(strings.TrimPrefix(uri, "oracle://"), "/")
	if len(parts) < 3 || parts[2] != "schema" {
		return nil, &Error{
			Code:    InvalidParams,
			Message: "Invalid resource URI format: expected oracle://owner/tablename/schema",
		}
	}

	owner := parts[0]
	tableName := parts[1]

	conn, err := s.connector.Connect(s.ctx)
	if err != nil {
		return nil, toRPCError(connectFailure(err))
	}
	defer conn.Close()

	rs, err := conn.Query(s.ctx, describeTableInSchemaSQL, tableName, owner)
	if err != nil {
		return nil, &Error{
			Code:    InternalError,
			Message: fmt.Sprintf("Failed to read schema: %v", err),
		}
	}
	if len(rs.Rows) == 0 {
		return nil, &Error{
			Code:    NotFound,
			Message: fmt.Sprintf("table '%s' not found in schema '%s'", tableName, owner),
		}
	}

	return &ReadResourceResult{
		Contents: []ResourceContent{
			{
				URI:      uri,
				MimeType: "application/json",
				Text:     formatRows(rs),
			},
		},
	}, nil
}
