// Package platform defines the boundary between the frameless core and
// the window system: stable window identities, window state and flag
// enums, the Adapter interface the core calls into, the WindowParams
// callback table it publishes, and the registry that aggregates the
// tables process-wide.
package platform

import "github.com/go-drift/frameless/pkg/geometry"

// WindowID is an opaque, stable identity for a top-level window. It is
// not a memory address: lookups keyed by it survive object moves. On
// X11 it is the X window ID; other backends choose their own encoding.
type WindowID uint64

// WindowState describes the coarse state of a top-level window.
type WindowState int

const (
	// WindowStateNormal is a plain, interactively resizable window.
	WindowStateNormal WindowState = iota
	WindowStateMinimized
	WindowStateMaximized
	WindowStateFullscreen
)

func (s WindowState) String() string {
	switch s {
	case WindowStateNormal:
		return "normal"
	case WindowStateMinimized:
		return "minimized"
	case WindowStateMaximized:
		return "maximized"
	case WindowStateFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// WindowFlags is a bit set of window hints.
type WindowFlags uint32

const (
	// WindowFlagFrameless marks a window whose native decorations are
	// suppressed.
	WindowFlagFrameless WindowFlags = 1 << iota
	// WindowFlagFixedSize marks a window that must not be interactively
	// resized, the cross-platform equivalent of a fixed-size dialog hint.
	WindowFlagFixedSize
	// WindowFlagStaysOnTop keeps the window above normal windows.
	WindowFlagStaysOnTop
)

// Has returns true if all flags in f are present in the set.
func (w WindowFlags) Has(f WindowFlags) bool {
	return w&f == f
}

// Screen describes a display output.
type Screen struct {
	Name string
	// Geometry is the full screen rectangle in global coordinates.
	Geometry geometry.Rect
	// WorkArea is Geometry minus docks, panels, and task bars; windows
	// are centered within it.
	WorkArea geometry.Rect
	// DevicePixelRatio is the scale from device-independent pixels to
	// native pixels.
	DevicePixelRatio float64
}
