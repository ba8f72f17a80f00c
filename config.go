package main

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for the optional configuration values.
const (
	DefaultServerName    = "oracle-mcp-server"
	DefaultServerVersion = "1.0.0"
	DefaultMaxRows       = 10000
)

// Config carries everything the server reads from the process environment.
// It is loaded once at startup and passed in explicitly; operation logic
// never reads the environment.
type Config struct {
	User          string
	Password      string
	ConnectString string

	ServerName    string
	ServerVersion string
	MaxRows       int
}

// LoadConfig builds a Config from environment variables. All missing required
// variables are reported together.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		User:          os.Getenv("ORACLE_USER"),
		Password:      os.Getenv("ORACLE_PASSWORD"),
		ConnectString: os.Getenv("ORACLE_CONNECT_STRING"),
		ServerName:    DefaultServerName,
		ServerVersion: DefaultServerVersion,
		MaxRows:       DefaultMaxRows,
	}

	var missing []string
	if cfg.User == "" {
		missing = append(missing, "ORACLE_USER")
	}
	if cfg.Password == "" {
		missing = append(missing, "ORACLE_PASSWORD")
	}
	if cfg.ConnectString == "" {
		missing = append(missing, "ORACLE_CONNECT_STRING")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	if v := os.Getenv("ORACLE_MCP_NAME"); v != "" {
		cfg.ServerName = v
	}
	if v := os.Getenv("ORACLE_MCP_VERSION"); v != "" {
		cfg.ServerVersion = v
	}
	if v := os.Getenv("ORACLE_MCP_MAX_ROWS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid ORACLE_MCP_MAX_ROWS: %q", v)
		}
		cfg.MaxRows = n
	}

	return cfg, nil
}
