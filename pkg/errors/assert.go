package errors

// DebugMode controls whether Assert reports violated assertions.
// Production builds leave it off; the affected operation still no-ops
// either way.
var DebugMode = false

// SetDebugMode enables or disables assertion reporting.
func SetDebugMode(debug bool) {
	DebugMode = debug
}

// Assert reports a programmer error when cond is false and DebugMode is
// on. It returns cond so call sites can gate their early return on it:
//
//	if !errors.Assert(w != nil, "frameless.SetTitleBar", "nil widget") {
//		return
//	}
func Assert(cond bool, op, msg string) bool {
	if !cond && DebugMode {
		Report(New(op, KindInvalidArgument, "assertion failed: %s", msg))
	}
	return cond
}
