package frameless

import (
	"time"

	"github.com/go-drift/frameless/pkg/config"
	"github.com/go-drift/frameless/pkg/errors"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// ExtendsContentIntoTitleBar turns frameless mode on or off for the
// owner's window. Redundant calls are no-ops.
func (h *Helper) ExtendsContentIntoTitleBar(value bool) {
	if h.IsContentExtendedIntoTitleBar() == value {
		return
	}
	if value {
		h.attach()
	} else {
		h.detach()
	}
	if !h.destroying {
		h.emitForAllInstances(EventExtendsContentChanged)
	}
}

// IsContentExtendedIntoTitleBar reports whether frameless mode is
// currently attached to the owner's window.
func (h *Helper) IsContentExtendedIntoTitleBar() bool {
	data := h.windowData()
	return data != nil && data.contentExtended
}

// WaitForReady blocks until the deferred platform-ready step has run,
// pumping the dispatch loop so the very completion it awaits can be
// processed. It returns immediately if the helper is already ready.
// Callers use it when they need guaranteed-initialized geometry before
// proceeding.
func (h *Helper) WaitForReady() {
	if h.platformReady {
		return
	}
	h.loop.WaitUntil(func() bool { return h.platformReady })
}

// findTopLevelWindow resolves the top-level window from the owner
// widget.
func (h *Helper) findTopLevelWindow() widget.Window {
	if h.owner == nil {
		return nil
	}
	if win, ok := h.owner.(widget.Window); ok {
		return win
	}
	return h.owner.Window()
}

// attach binds the helper to its owner's top-level window: native
// window attributes, parameter table, registry entry, then the deferred
// platform-ready step.
func (h *Helper) attach() {
	win := h.findTopLevelWindow()
	if win == nil {
		errors.Report(errors.New("frameless.attach", errors.KindLifecycle,
			"no top-level window found for owner widget"))
		return
	}
	if h.window == win {
		return
	}
	h.window = win

	// Both attributes must be set before the native handle exists or
	// the whole ancestor chain goes native with it.
	if !win.TestAttribute(widget.AttrDontCreateNativeAncestors) {
		win.SetAttribute(widget.AttrDontCreateNativeAncestors, true)
	}
	if !win.TestAttribute(widget.AttrNativeWindow) {
		win.SetAttribute(widget.AttrNativeWindow, true)
	}

	data := lookupWindowData(win.ID())
	h.registerInstance(data)
	if data.contentExtended {
		// Another helper already attached this window; this instance
		// only joins the notification list.
		return
	}

	params := h.buildWindowParams(win)
	data.params = params
	h.registry.AddWindow(win.ID(), params)
	data.contentExtended = true

	// The platform window may not have finished initializing yet, and
	// the window system resets position and size during creation,
	// discarding any adjustment made before that. Geometry work is
	// deferred until the dust settles; detach before the timer fires
	// suppresses it via the window-reference check.
	h.loop.PostDelayed(h.readyWaitTime, func() {
		if h.window == nil {
			return
		}
		h.platformReady = true
		if h.cfg.IsSet(config.CenterWindowBeforeShow) {
			h.MoveWindowToDesktopCenter()
		}
		if h.cfg.IsSet(config.EnableBlurBehindWindow) {
			h.SetBlurBehindWindowEnabled(true)
		}
		h.emitForAllInstances(EventWindowChanged)
		h.emitForAllInstances(EventReady)
	})
}

// detach unbinds the helper's window: the state-table record and the
// registry entry go away together so neither can leak.
func (h *Helper) detach() {
	if h.window == nil {
		return
	}
	id := h.window.ID()
	data, ok := findWindowData(id)
	if !ok {
		return
	}
	instances := make([]*Helper, len(data.instances))
	copy(instances, data.instances)
	eraseWindowData(id)
	h.registry.RemoveWindow(id)
	h.window = nil
	h.platformReady = false
	if !h.destroying {
		notifyInstances(instances, EventWindowChanged)
	}
}

// registerInstance adds h to the record's notification list once.
func (h *Helper) registerInstance(data *windowData) {
	for _, instance := range data.instances {
		if instance == h {
			return
		}
	}
	data.instances = append(data.instances, h)
}

// buildWindowParams populates the parameter callback table for a
// window. The table is the external interface of this subsystem: the
// window-parameter registry serves it to the platform shim.
func (h *Helper) buildWindowParams(win widget.Window) *platform.WindowParams {
	return &platform.WindowParams{
		GetWindowID:       win.ID,
		GetWindowFlags:    win.Flags,
		SetWindowFlags:    win.SetFlags,
		GetWindowSize:     win.Size,
		SetWindowSize:     win.Resize,
		GetWindowPosition: win.Pos,
		SetWindowPosition: win.Move,
		GetWindowScreen:   win.Screen,

		IsWindowFixedSize:  h.IsWindowFixedSize,
		SetWindowFixedSize: h.SetWindowFixedSize,

		GetWindowState:  win.State,
		SetWindowState:  win.SetState,
		GetWindowHandle: win.Handle,

		WindowToScreen: win.MapToGlobal,
		ScreenToWindow: win.MapFromGlobal,

		IsInsideSystemButtons:         h.isInSystemButtons,
		IsInsideTitleBarDraggableArea: h.isInTitleBarDraggableArea,
		GetWindowDevicePixelRatio:     win.DevicePixelRatio,
		SetSystemButtonState:          h.SetSystemButtonState,
		ShouldIgnoreMouseEvents:       h.shouldIgnoreMouseEvents,
		ShowSystemMenu:                h.ShowSystemMenu,

		GetProperty: h.WindowProperty,
		SetProperty: h.SetWindowProperty,
		SetCursor:   win.SetCursor,
		UnsetCursor: win.UnsetCursor,

		ForceChildrenRepaint: func(delayMS int) {
			h.RepaintAllChildren(time.Duration(delayMS) * time.Millisecond)
		},
	}
}
