package platform

import "github.com/go-drift/frameless/pkg/geometry"

// Adapter is the set of window-system operations the frameless core
// delegates to. One implementation exists per target platform; the core
// depends only on this interface and degrades to best effort when an
// operation fails or a capability is absent.
type Adapter interface {
	// StartSystemMove hands an in-progress drag to the window manager
	// so the window moves with OS-native snapping and tracking.
	StartSystemMove(id WindowID, pos geometry.Point) error

	// StartSystemResize hands an in-progress drag on the given edges to
	// the window manager.
	StartSystemResize(id WindowID, edges geometry.Edges, pos geometry.Point) error

	// ShowSystemMenu opens the native window menu at a position in
	// native (DPR-scaled) global coordinates. Best effort: platforms
	// without a window menu return an error that the caller logs.
	ShowSystemMenu(id WindowID, nativePos geometry.Point) error

	// SetBlurBehind enables or disables the compositor blur region for
	// the window. Only meaningful when BlurBehindSupported is true.
	SetBlurBehind(id WindowID, enabled bool) error

	// BlurBehindSupported reports whether the compositor can blur
	// behind a window. When false the helper falls back to the window's
	// material emulation if it has one.
	BlurBehindSupported() bool

	// FrameBorderVisible reports whether the platform draws a visible
	// frame indicator on frameless windows. When it does, only the top
	// resize band suppresses synthetic mouse events; the side bands are
	// handled by the native frame.
	FrameBorderVisible() bool

	// SetSnappingEnabled toggles OS-driven edge snapping for the
	// window; fixed-size windows turn it off.
	SetSnappingEnabled(id WindowID, enabled bool) error

	// BringToFront asks the window manager to raise and activate the
	// window.
	BringToFront(id WindowID) error

	// CursorPos returns the global pointer position in
	// device-independent pixels.
	CursorPos() geometry.Point
}
