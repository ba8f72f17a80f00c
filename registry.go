package main

import "context"

// toolHandler executes one tool call against already-parsed arguments.
type toolHandler func(ctx context.Context, args map[string]any) (*CallToolResult, error)

type toolEntry struct {
	tool    Tool
	handler toolHandler
}

// toolRegistry is the static tool table, built once at startup. tools/list
// returns the descriptors in declaration order; dispatch is a map lookup.
type toolRegistry struct {
	entries []toolEntry
	index   map[string]toolHandler
}

func newToolRegistry(ex *Executor) *toolRegistry {
	entries := []toolEntry{
		{
			tool: Tool{
				Name:        "execute_query",
				Description: "Execute a SELECT query against the Oracle database. Positional bind values are substituted for :1, :2, ... placeholders.",
				InputSchema: InputSchema{
					Type: "object",
					Properties: map[string]Property{
						"query": {
							Type:        "string",
							Description: "The SELECT statement to execute",
						},
						"binds": {
							Type:        "array",
							Description: "Positional bind values, in placeholder order",
							Items:       &Property{Type: "string"},
						},
					},
					Required: []string{"query"},
				},
			},
			handler: ex.ExecuteQuery,
		},
		{
			tool: Tool{
				Name:        "execute_dml",
				Description: "Execute an INSERT, UPDATE or DELETE statement. Every statement is committed immediately.",
				InputSchema: InputSchema{
					Type: "object",
					Properties: map[string]Property{
						"statement": {
							Type:        "string",
							Description: "The INSERT, UPDATE or DELETE statement to execute",
						},
						"binds": {
							Type:        "array",
							Description: "Positional bind values, in placeholder order",
							Items:       &Property{Type: "string"},
						},
					},
					Required: []string{"statement"},
				},
			},
			handler: ex.ExecuteDML,
		},
		{
			tool: Tool{
				Name:        "describe_table",
				Description: "Show the columns of a table: name, data type, length, nullability and default.",
				InputSchema: InputSchema{
					Type: "object",
					Properties: map[string]Property{
						"table_name": {
							Type:        "string",
							Description: "Name of the table to describe",
						},
						"schema": {
							Type:        "string",
							Description: "Owning schema; defaults to the current user",
						},
					},
					Required: []string{"table_name"},
				},
			},
			handler: ex.DescribeTable,
		},
		{
			tool: Tool{
				Name:        "list_tables",
				Description: "List tables owned by the current user, or by another schema if given.",
				InputSchema: InputSchema{
					Type: "object",
					Properties: map[string]Property{
						"schema": {
							Type:        "string",
							Description: "Schema to list; defaults to the current user",
						},
					},
					Required: []string{},
				},
			},
			handler: ex.ListTables,
		},
		{
			tool: Tool{
				Name:        "get_connection_info",
				Description: "Report the database version, current user, current schema and session for the active connection.",
				InputSchema: InputSchema{
					Type:       "object",
					Properties: map[string]Property{},
					Required:   []string{},
				},
			},
			handler: ex.ConnectionInfo,
		},
	}

	index := make(map[string]toolHandler, len(entries))
	for _, e := range entries {
		index[e.tool.Name] = e.handler
	}

	return &toolRegistry{entries: entries, index: index}
}

func (r *toolRegistry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.entries))
	for _, e := range r.entries {
		tools = append(tools, e.tool)
	}
	return tools
}

func (r *toolRegistry) Lookup(name string) (toolHandler, bool) {
	h, ok := r.index[name]
	return h, ok
}
