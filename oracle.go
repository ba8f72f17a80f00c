package main

import (
	"context"
	"database/sql"
	"fmt"
)

// OracleConnector implements Connector over a godror database handle. The
// handle itself is lazy; every Connect hands out a dedicated session that is
// discarded when closed rather than returned to an idle pool.
type OracleConnector struct {
	db *sql.DB
}

func NewOracleConnector(cfg *Config) (*OracleConnector, error) {
	dsn := fmt.Sprintf("user=%q password=%q connectString=%q", cfg.User, cfg.Password, cfg.ConnectString)

	db, err := sql.Open("godror", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database handle: %w", err)
	}

	// No idle sessions: each call's session is private and dies with the call.
	db.SetMaxIdleConns(0)

	return &OracleConnector{db: db}, nil
}

func (c *OracleConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &oracleConn{conn: conn}, nil
}

// Close releases the underlying database handle.
func (c *OracleConnector) Close() error {
	return c.db.Close()
}

type oracleConn struct {
	conn *sql.Conn
}

func (c *oracleConn) Query(ctx context.Context, query string, binds ...any) (*ResultSet, error) {
	rows, err := c.conn.QueryContext(ctx, query, binds...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(rs.Rows)+1, err)
		}

		// Convert []byte to string for JSON serialization
		for i, val := range values {
			if b, ok := val.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}

func (c *oracleConn) Exec(ctx context.Context, stmt string, binds ...any) (int64, error) {
	result, err := c.conn.ExecContext(ctx, stmt, binds...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (c *oracleConn) Close() error {
	return c.conn.Close()
}
