package frameless

import (
	"testing"

	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

func TestSetSystemButtonState(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	win.globalOrigin = geometry.Point{X: 100, Y: 100}
	h := env.attach(win)

	closeButton := newFakeButton(geometry.Point{X: 370, Y: 0}, geometry.Size{Width: 30, Height: 30})
	closeButton.underPointer = true
	h.SetSystemButton(widget.Register(closeButton), platform.SystemButtonClose)

	env.adapter.cursor = geometry.Point{X: 485, Y: 115}
	h.SetSystemButtonState(platform.SystemButtonClose, platform.ButtonStateHovered)

	if len(closeButton.states) != 1 || closeButton.states[0] != platform.ButtonStateHovered {
		t.Fatalf("states = %v, want [hovered]", closeButton.states)
	}
	if closeButton.lastGlobal != (geometry.Point{X: 485, Y: 115}) {
		t.Errorf("global = %v", closeButton.lastGlobal)
	}
	// Window at (100,100): scene = global - origin, local = scene -
	// widget origin.
	if closeButton.lastScene != (geometry.Point{X: 385, Y: 15}) {
		t.Errorf("scene = %v", closeButton.lastScene)
	}
	if closeButton.lastLocal != (geometry.Point{X: 15, Y: 15}) {
		t.Errorf("local = %v", closeButton.lastLocal)
	}
	if !closeButton.lastUnder {
		t.Error("underPointer flag not forwarded")
	}
}

func TestSetSystemButtonStateUnassignedRole(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	h := env.attach(win)

	// No widget in the slot; must not panic or report.
	h.SetSystemButtonState(platform.SystemButtonMinimize, platform.ButtonStatePressed)
}

func TestSetSystemButtonStateReleasedWidget(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	h := env.attach(win)

	b := newFakeButton(geometry.Point{X: 370, Y: 0}, geometry.Size{Width: 30, Height: 30})
	hd := widget.Register(b)
	h.SetSystemButton(hd, platform.SystemButtonClose)
	widget.Release(hd)

	h.SetSystemButtonState(platform.SystemButtonClose, platform.ButtonStatePressed)
	if len(b.states) != 0 {
		t.Error("released widget received feedback")
	}
}

func TestSetSystemButtonStateNonFeedbackWidget(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	h := env.attach(win)

	// A plain widget without pointer feedback support.
	plain := newFakeWidget(geometry.Point{X: 370, Y: 0}, geometry.Size{Width: 30, Height: 30})
	h.SetSystemButton(widget.Register(plain), platform.SystemButtonClose)

	// Must be a silent no-op.
	h.SetSystemButtonState(platform.SystemButtonClose, platform.ButtonStateHovered)
}

func TestMaximizeAndRestoreShareSlot(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	h := env.attach(win)

	b := newFakeButton(geometry.Point{X: 340, Y: 0}, geometry.Size{Width: 30, Height: 30})
	h.SetSystemButton(widget.Register(b), platform.SystemButtonMaximize)

	h.SetSystemButtonState(platform.SystemButtonRestore, platform.ButtonStateHovered)
	h.SetSystemButtonState(platform.SystemButtonMaximize, platform.ButtonStatePressed)

	if len(b.states) != 2 {
		t.Fatalf("shared slot received %d states, want 2", len(b.states))
	}
}

func TestSetSystemButtonOverwritesSlot(t *testing.T) {
	env := newTestEnv(t)
	win := newFakeWindow(1, geometry.Size{Width: 400, Height: 300})
	h := env.attach(win)

	old := newFakeButton(geometry.Point{X: 340, Y: 0}, geometry.Size{Width: 30, Height: 30})
	replacement := newFakeButton(geometry.Point{X: 340, Y: 0}, geometry.Size{Width: 30, Height: 30})
	h.SetSystemButton(widget.Register(old), platform.SystemButtonClose)
	h.SetSystemButton(widget.Register(replacement), platform.SystemButtonClose)

	h.SetSystemButtonState(platform.SystemButtonClose, platform.ButtonStatePressed)
	if len(old.states) != 0 {
		t.Error("replaced widget still receives feedback")
	}
	if len(replacement.states) != 1 {
		t.Error("replacement widget received no feedback")
	}
}
