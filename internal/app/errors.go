package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoDatabase indicates the console was started with nothing to show.
	ErrNoDatabase = errors.New("no database")

	// ErrNoCommand indicates an add request without command text.
	ErrNoCommand = errors.New("no command given")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "add", "import", "exec")
	Target string // Target of the operation (e.g., file path, URL)
	Err    error  // Underlying error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports a component that could not start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return "init " + e.Component + ": " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}
