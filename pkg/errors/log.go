package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including window identities and
	// error kinds.
	Verbose bool
}

// HandleError logs an Error to stderr.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[frameless] %s [%s]", err.Op, err.Kind)
		if err.Window != 0 {
			fmt.Fprintf(os.Stderr, " window=%#x", err.Window)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[frameless] %s: %v\n", err.Op, err.Err)
	}
}
