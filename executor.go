package main

import (
	"context"
	"fmt"
)

// Catalog queries. Table and owner names are case-normalized by the database
// so callers can pass either case.
const (
	describeTableSQL = `SELECT column_name, data_type, data_length, nullable, data_default
		FROM user_tab_columns
		WHERE table_name = UPPER(:1)
		ORDER BY column_id`

	describeTableInSchemaSQL = `SELECT column_name, data_type, data_length, nullable, data_default
		FROM all_tab_columns
		WHERE table_name = UPPER(:1) AND owner = UPPER(:2)
		ORDER BY column_id`

	listTablesSQL = `SELECT table_name FROM user_tables ORDER BY table_name`

	listTablesInSchemaSQL = `SELECT table_name, owner FROM all_tables WHERE owner = UPPER(:1) ORDER BY table_name`
)

// Executor runs the SQL tools. Every call opens exactly one session via the
// connector and releases it before returning, on success and failure alike.
type Executor struct {
	connector Connector
	maxRows   int
}

func NewExecutor(connector Connector, maxRows int) *Executor {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &Executor{connector: connector, maxRows: maxRows}
}

func (e *Executor) ExecuteQuery(ctx context.Context, args map[string]any) (*CallToolResult, error) {
	query, err := requiredString(args, "query")
	if err != nil {
		return nil, err
	}
	if err := validateStatementClass("execute_query", query, queryPrefixes); err != nil {
		return nil, err
	}
	binds, err := bindValues(args)
	if err != nil {
		return nil, err
	}

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, connectFailure(err)
	}
	defer conn.Close()

	rs, err := conn.Query(ctx, query, binds...)
	if err != nil {
		return nil, err
	}

	truncated := len(rs.Rows) > e.maxRows
	if truncated {
		rs.Rows = rs.Rows[:e.maxRows]
	}

	text := fmt.Sprintf("Query executed successfully. %d rows returned.\n\n%s", len(rs.Rows), formatRows(rs))
	if truncated {
		text += fmt.Sprintf("\n\n(result truncated at %d rows)", e.maxRows)
	}
	return textResult(text), nil
}

func (e *Executor) ExecuteDML(ctx context.Context, args map[string]any) (*CallToolResult, error) {
	stmt, err := requiredString(args, "statement")
	if err != nil {
		return nil, err
	}
	if err := validateStatementClass("execute_dml", stmt, dmlPrefixes); err != nil {
		return nil, err
	}
	binds, err := bindValues(args)
	if err != nil {
		return nil, err
	}

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, connectFailure(err)
	}
	defer conn.Close()

	affected, err := conn.Exec(ctx, stmt, binds...)
	if err != nil {
		return nil, err
	}

	return textResult(fmt.Sprintf("Statement executed successfully. %d rows affected.", affected)), nil
}

func (e *Executor) DescribeTable(ctx context.Context, args map[string]any) (*CallToolResult, error) {
	table, err := requiredString(args, "table_name")
	if err != nil {
		return nil, err
	}
	schema, err := optionalString(args, "schema")
	if err != nil {
		return nil, err
	}

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, connectFailure(err)
	}
	defer conn.Close()

	var rs *ResultSet
	if schema != "" {
		rs, err = conn.Query(ctx, describeTableInSchemaSQL, table, schema)
	} else {
		rs, err = conn.Query(ctx, describeTableSQL, table)
	}
	if err != nil {
		return nil, err
	}

	if len(rs.Rows) == 0 {
		if schema != "" {
			return nil, notFound("table '%s' not found in schema '%s'", table, schema)
		}
		return nil, notFound("table '%s' not found", table)
	}

	text := fmt.Sprintf("Table '%s' has %d columns:\n\n%s", table, len(rs.Rows), formatRows(rs))
	return textResult(text), nil
}

func (e *Executor) ListTables(ctx context.Context, args map[string]any) (*CallToolResult, error) {
	schema, err := optionalString(args, "schema")
	if err != nil {
		return nil, err
	}

	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, connectFailure(err)
	}
	defer conn.Close()

	var rs *ResultSet
	var header string
	if schema != "" {
		rs, err = conn.Query(ctx, listTablesInSchemaSQL, schema)
		header = fmt.Sprintf("Tables in schema '%s':", schema)
	} else {
		rs, err = conn.Query(ctx, listTablesSQL)
		header = "Tables owned by current user:"
	}
	if err != nil {
		return nil, err
	}

	return textResult(header + "\n\n" + formatRows(rs)), nil
}

// ConnectionInfo runs four fixed introspection queries on one session and
// reports their results as one mapping. Any of the four failing fails the
// whole call.
func (e *Executor) ConnectionInfo(ctx context.Context, args map[string]any) (*CallToolResult, error) {
	conn, err := e.connector.Connect(ctx)
	if err != nil {
		return nil, connectFailure(err)
	}
	defer conn.Close()

	queries := []struct {
		sql  string
		keys []string
	}{
		{`SELECT banner FROM v$version WHERE ROWNUM = 1`, []string{"version"}},
		{`SELECT user FROM dual`, []string{"user"}},
		{`SELECT sys_context('USERENV', 'CURRENT_SCHEMA') FROM dual`, []string{"current_schema"}},
		{`SELECT sys_context('USERENV', 'SID'), sys_context('USERENV', 'HOST') FROM dual`, []string{"sid", "host"}},
	}

	var info []field
	for _, q := range queries {
		rs, err := conn.Query(ctx, q.sql)
		if err != nil {
			return nil, err
		}
		if len(rs.Rows) == 0 {
			return nil, fmt.Errorf("introspection query returned no rows: %s", q.sql)
		}
		for i, key := range q.keys {
			info = append(info, field{name: key, value: rs.Rows[0][i]})
		}
	}

	return textResult("Connection information:\n\n" + formatFields(info)), nil
}

func textResult(text string) *CallToolResult {
	return &CallToolResult{Content: []Content{{Type: "text", Text: text}}}
}
