package errors

import "time"

// Handler receives reported errors.
type Handler interface {
	HandleError(err *Error)
}

// DefaultHandler is the global error handler.
// It defaults to LogHandler with verbose=false.
var DefaultHandler Handler = &LogHandler{}

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := DefaultHandler; h != nil {
		h.HandleError(err)
	}
}
