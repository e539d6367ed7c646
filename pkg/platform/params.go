package platform

import "github.com/go-drift/frameless/pkg/geometry"

// WindowParams is the callback table a helper publishes for one window
// at attach time. The window-parameter registry hands it to the
// platform shim, which uses it to answer non-client-area hit-test
// queries and to drive the window without linking against the widget
// toolkit. Every field is non-nil after attach.
type WindowParams struct {
	GetWindowID func() WindowID

	GetWindowFlags func() WindowFlags
	SetWindowFlags func(flags WindowFlags)

	GetWindowSize func() geometry.Size
	SetWindowSize func(size geometry.Size)

	GetWindowPosition func() geometry.Point
	SetWindowPosition func(pos geometry.Point)

	GetWindowScreen func() *Screen

	IsWindowFixedSize  func() bool
	SetWindowFixedSize func(fixed bool)

	GetWindowState func() WindowState
	SetWindowState func(state WindowState)

	GetWindowHandle func() uintptr

	// WindowToScreen and ScreenToWindow map between window-local and
	// global device-independent coordinates.
	WindowToScreen func(pos geometry.Point) geometry.Point
	ScreenToWindow func(pos geometry.Point) geometry.Point

	// IsInsideSystemButtons classifies a window-local position against
	// the registered system buttons.
	IsInsideSystemButtons func(pos geometry.Point) (SystemButton, bool)

	// IsInsideTitleBarDraggableArea reports whether dragging at a
	// window-local position should move the window.
	IsInsideTitleBarDraggableArea func(pos geometry.Point) bool

	GetWindowDevicePixelRatio func() float64

	SetSystemButtonState func(button SystemButton, state ButtonState)

	// ShouldIgnoreMouseEvents reports whether a synthetic mouse event
	// at a window-local position would conflict with OS resize handling.
	ShouldIgnoreMouseEvents func(pos geometry.Point) bool

	ShowSystemMenu func(pos geometry.Point)

	GetProperty func(name string, def any) any
	SetProperty func(name string, value any)

	SetCursor   func(cursor Cursor)
	UnsetCursor func()

	// ForceChildrenRepaint forces the window and every descendant to
	// redraw, optionally after a delay in milliseconds.
	ForceChildrenRepaint func(delayMS int)
}
