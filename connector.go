package main

import "context"

// ResultSet holds one query's output: column names in driver order and rows
// of values in the same order.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Conn is a single live database session. It is owned exclusively by the call
// that opened it and must be closed on every exit path of that call.
type Conn interface {
	// Query runs a statement with positional binds and fetches all rows.
	Query(ctx context.Context, query string, binds ...any) (*ResultSet, error)

	// Exec runs a statement with positional binds and reports affected rows.
	Exec(ctx context.Context, stmt string, binds ...any) (int64, error)

	Close() error
}

// Connector opens one session per call. Sessions are never shared between
// calls.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}
