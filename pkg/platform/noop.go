package platform

import "github.com/go-drift/frameless/pkg/geometry"

// NoopAdapter accepts every call without side effects. It is the
// default adapter on platforms without a backend and the test stand-in:
// frameless decorations degrade to "nothing happens" rather than crash.
type NoopAdapter struct{}

var _ Adapter = NoopAdapter{}

func (NoopAdapter) StartSystemMove(WindowID, geometry.Point) error { return nil }

func (NoopAdapter) StartSystemResize(WindowID, geometry.Edges, geometry.Point) error { return nil }

func (NoopAdapter) ShowSystemMenu(WindowID, geometry.Point) error { return nil }

func (NoopAdapter) SetBlurBehind(WindowID, bool) error { return nil }

func (NoopAdapter) BlurBehindSupported() bool { return false }

func (NoopAdapter) FrameBorderVisible() bool { return false }

func (NoopAdapter) SetSnappingEnabled(WindowID, bool) error { return nil }

func (NoopAdapter) BringToFront(WindowID) error { return nil }

func (NoopAdapter) CursorPos() geometry.Point { return geometry.Point{} }
