package main

import "fmt"

// ToolError is a classified tool failure. Errors of this type keep their code
// all the way up to the JSON-RPC response; anything else becomes InternalError
// at the dispatcher.
type ToolError struct {
	Code    int
	Message string
}

func (e *ToolError) Error() string { return e.Message }

func invalidArgument(format string, args ...any) *ToolError {
	return &ToolError{Code: InvalidParams, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) *ToolError {
	return &ToolError{Code: NotFound, Message: fmt.Sprintf(format, args...)}
}

func connectFailure(err error) *ToolError {
	return &ToolError{Code: ConnectionFailure, Message: fmt.Sprintf("failed to connect to database: %v", err)}
}
