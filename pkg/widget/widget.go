// Package widget defines the toolkit-facing contracts of the frameless
// helper: the Widget and Window interfaces the hosting toolkit
// implements, optional capability interfaces discovered by type
// assertion, and the weak-handle arena that lets the helper hold
// references to widgets without ever dangling.
package widget

import (
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
)

// Widget is the minimal surface the helper needs from a toolkit widget.
// Geometry accessors report the current on-screen values at call time;
// the helper never caches them because widgets move during resizes.
type Widget interface {
	Visible() bool
	Enabled() bool

	// Pos is the widget's top-left corner in parent coordinates.
	Pos() geometry.Point
	Size() geometry.Size
	Move(pos geometry.Point)
	Resize(size geometry.Size)

	MinimumSize() geometry.Size
	MaximumSize() geometry.Size
	SizePolicy() SizePolicy
	SetSizePolicy(policy SizePolicy)
	SetMinimumSize(size geometry.Size)
	SetMaximumSize(size geometry.Size)

	// Window returns the enclosing top-level window, or nil if the
	// widget is not rooted in one yet.
	Window() Window

	// MapToWindow maps a widget-local position into window coordinates.
	MapToWindow(pos geometry.Point) geometry.Point

	// UnderPointer reports whether the pointer is currently over the
	// widget.
	UnderPointer() bool

	// Update requests an ordinary repaint.
	Update()
}

// Window extends Widget with the top-level-window surface the helper
// binds its parameter table to.
type Window interface {
	Widget

	// ID is the stable platform identity of the window.
	ID() platform.WindowID
	// Handle is the native window handle, or 0 before creation.
	Handle() uintptr

	Flags() platform.WindowFlags
	SetFlags(flags platform.WindowFlags)

	State() platform.WindowState
	SetState(state platform.WindowState)

	Screen() *platform.Screen
	DevicePixelRatio() float64

	MapToGlobal(pos geometry.Point) geometry.Point
	MapFromGlobal(pos geometry.Point) geometry.Point

	Show()
	Raise()
	Activate()

	TestAttribute(attr Attribute) bool
	SetAttribute(attr Attribute, on bool)

	// Property and SetProperty access named dynamic properties. The
	// second Property result reports presence.
	Property(name string) (any, bool)
	SetProperty(name string, value any)

	SetCursor(cursor platform.Cursor)
	UnsetCursor()
}

// Attribute is a window creation attribute the helper marks at attach.
type Attribute int

const (
	// AttrDontCreateNativeAncestors keeps ancestor widgets from getting
	// native handles of their own when the window goes native.
	AttrDontCreateNativeAncestors Attribute = iota
	// AttrNativeWindow forces creation of a native window handle.
	AttrNativeWindow
)

// Policy is one axis of a widget size policy.
type Policy int

const (
	PolicyPreferred Policy = iota
	PolicyFixed
	PolicyMinimum
	PolicyMaximum
	PolicyExpanding
)

// SizePolicy describes how a widget trades space on each axis.
type SizePolicy struct {
	Horizontal Policy
	Vertical   Policy
}

// SizeMax is the largest representable widget dimension; setting a
// maximum size of (SizeMax, SizeMax) removes the size cap.
const SizeMax = 1<<24 - 1

// DefaultMinimumWindowSize is restored when a fixed-size pin is lifted.
var DefaultMinimumWindowSize = geometry.Size{Width: 160, Height: 160}

// ChildVisitor is implemented by widgets that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each direct child.
	VisitChildren(visitor func(Widget))
}

// PointerFeedback is implemented by widgets that can render synthetic
// hover/press feedback. The helper uses it so keyboard- or
// programmatically-driven system button highlighting looks the same as
// pointer-driven highlighting.
type PointerFeedback interface {
	// SimulateButtonState applies visual feedback for the given state.
	// Positions are the current pointer position in global, window, and
	// widget-local coordinates; underPointer is the widget's current
	// under-pointer flag.
	SimulateButtonState(state platform.ButtonState, global, scene, local geometry.Point, underPointer bool)
}

// MicaHost is implemented by windows that carry a background material
// renderer.
type MicaHost interface {
	MicaMaterial() platform.MicaMaterial
}

// BorderHost is implemented by windows that carry a border painter.
type BorderHost interface {
	WindowBorder() platform.WindowBorder
}

// Backgrounder is implemented by windows whose background color the
// helper may swap while blur-behind is active.
type Backgrounder interface {
	// BackgroundColor returns the window background as 0xAARRGGBB.
	BackgroundColor() uint32
	SetBackgroundColor(argb uint32)
}
