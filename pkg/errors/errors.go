// Package errors provides structured error reporting for the frameless
// toolkit. Failures in this subsystem are never fatal: they are reported
// to a process-wide handler and the triggering operation degrades to a
// no-op, because window chrome must never crash the hosting application.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidArgument indicates a caller passed a nil widget, an
	// invalid rectangle, an empty event name, or similar programmer error.
	KindInvalidArgument
	// KindLifecycle indicates an attach/detach failure, such as no
	// resolvable top-level window.
	KindLifecycle
	// KindPlatform indicates a platform adapter call failed or the
	// requested capability is unsupported.
	KindPlatform
	// KindGeometry indicates a geometry query produced unusable values.
	KindGeometry
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindLifecycle:
		return "lifecycle"
	case KindPlatform:
		return "platform"
	case KindGeometry:
		return "geometry"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the frameless toolkit.
type Error struct {
	// Op is the operation that failed (e.g., "frameless.attach").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error, if any.
	Err error
	// Window is the identity of the affected window, if known.
	Window uint64
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Window != 0 {
		return fmt.Sprintf("%s [%s] window=%#x: %v", e.Op, e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New is a convenience constructor for a message-only Error.
func New(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
