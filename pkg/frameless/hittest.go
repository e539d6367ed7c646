package frameless

import (
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// resizeBorderThickness is the band along the window edges reserved for
// OS-driven interactive resizing, in device-independent pixels.
const resizeBorderThickness = 8

// mapWidgetRectToWindow returns the widget's rectangle in window
// coordinates, computed from its on-screen position at call time.
func mapWidgetRectToWindow(w widget.Widget) geometry.Rect {
	origin := w.MapToWindow(geometry.Point{})
	return geometry.RectAt(origin, w.Size())
}

// resolveInteractive returns the widget behind a handle if it is live,
// visible, and enabled; hit-testing treats everything else as absent.
func resolveInteractive(hd widget.Handle) (widget.Widget, bool) {
	w, ok := widget.Resolve(hd)
	if !ok || !w.Visible() || !w.Enabled() {
		return nil, false
	}
	return w, true
}

// isInSystemButtons classifies a window-local position against the
// registered system buttons, in fixed priority order: window icon,
// help, minimize, maximize, close. First match wins.
func (h *Helper) isInSystemButtons(pos geometry.Point) (platform.SystemButton, bool) {
	data := h.windowData()
	if data == nil {
		return platform.SystemButtonUnknown, false
	}
	for _, role := range buttonPriority {
		w, ok := resolveInteractive(data.buttons[buttonSlot(role)])
		if !ok {
			continue
		}
		if mapWidgetRectToWindow(w).Contains(pos) {
			return role, true
		}
	}
	return platform.SystemButtonUnknown, false
}

// isInTitleBarDraggableArea reports whether dragging at a window-local
// position should move the window: inside the title bar widget but
// outside every system button, hit-test-excluded widget, and excluded
// rectangle.
func (h *Helper) isInTitleBarDraggableArea(pos geometry.Point) bool {
	data := h.windowData()
	if data == nil {
		// Not attached to a window yet, so there is no title bar.
		return false
	}
	titleBar, ok := resolveInteractive(data.titleBar)
	if !ok {
		// No title bar, or it is hidden or disabled; the pointer is
		// always in the client area.
		return false
	}
	windowRect := geometry.RectAt(geometry.Point{}, h.window.Size())
	titleBarRect := mapWidgetRectToWindow(titleBar)
	if !titleBarRect.Intersects(windowRect) {
		// A title bar entirely outside the window never causes
		// mis-hits.
		return false
	}
	region := geometry.RegionOf(titleBarRect)
	for _, hd := range data.buttons {
		if w, ok := resolveInteractive(hd); ok {
			region = region.Subtract(mapWidgetRectToWindow(w))
		}
	}
	for _, hd := range data.hitTestExcludedWidgets {
		if w, ok := resolveInteractive(hd); ok {
			region = region.Subtract(mapWidgetRectToWindow(w))
		}
	}
	for _, rect := range data.hitTestExcludedRects {
		region = region.Subtract(rect)
	}
	return region.Contains(pos)
}

// shouldIgnoreMouseEvents reports whether a synthetic mouse event at a
// window-local position would conflict with OS resize handling: the
// window is in its normal state and the position falls inside the
// resize border band. The top band is always checked; the left and
// right bands only on platforms without a visible native frame
// indicator, which handle those edges themselves.
func (h *Helper) shouldIgnoreMouseEvents(pos geometry.Point) bool {
	if h.window == nil {
		return false
	}
	if h.window.State() != platform.WindowStateNormal {
		return false
	}
	if pos.Y < resizeBorderThickness {
		return true
	}
	if h.adapter.FrameBorderVisible() {
		return false
	}
	width := h.window.Size().Width
	return pos.X < resizeBorderThickness || pos.X >= width-resizeBorderThickness
}
