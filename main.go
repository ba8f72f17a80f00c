package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/godror/godror"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Required: ORACLE_USER, ORACLE_PASSWORD, ORACLE_CONNECT_STRING (e.g. 'localhost:1521/FREEPDB1')")
		os.Exit(1)
	}

	// Create context that cancels on interrupt signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logError("Received shutdown signal")
		cancel()
	}()

	connector, err := NewOracleConnector(cfg)
	if err != nil {
		logError("Failed to create connector: %v", err)
		os.Exit(1)
	}

	server := NewMCPServer(ctx, cfg, connector)
	defer server.Close()

	logError("%s started (user %s @ %s)", cfg.ServerName, cfg.User, cfg.ConnectString)

	if err := server.Run(); err != nil {
		if err == context.Canceled {
			logError("Server shutdown gracefully")
		} else {
			logError("Server error: %v", err)
			os.Exit(1)
		}
	}
}
