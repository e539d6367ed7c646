package frameless

import (
	"github.com/go-drift/frameless/pkg/errors"
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// SetSystemButtonState applies hover/press visual feedback to the
// widget registered for a role. Platform hover tracking calls this so
// buttons highlight correctly even when the pointer never produces
// toolkit-level events (the OS owns the non-client area). An
// unassigned role is a no-op.
func (h *Helper) SetSystemButtonState(role platform.SystemButton, state platform.ButtonState) {
	if !errors.Assert(role != platform.SystemButtonUnknown, "frameless.SetSystemButtonState", "unknown button role") {
		return
	}
	data := h.windowData()
	if data == nil {
		return
	}
	slot := buttonSlot(role)
	if slot < 0 {
		return
	}
	w, ok := widget.Resolve(data.buttons[slot])
	if !ok {
		return
	}
	feedback, ok := w.(widget.PointerFeedback)
	if !ok {
		return
	}

	// Derive every coordinate space from the live cursor position so
	// the synthesized feedback matches what a real pointer event would
	// carry.
	global := h.adapter.CursorPos()
	scene := h.window.MapFromGlobal(global)
	local := scene.Sub(w.MapToWindow(geometry.Point{}))
	feedback.SimulateButtonState(state, global, scene, local, w.UnderPointer())
}
