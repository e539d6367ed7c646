package frameless

import (
	"time"

	"github.com/go-drift/frameless/pkg/errors"
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// Geometry perturbation used to defeat the toolkit's paint-damage
// optimizer, which can skip repaints after window-manager-driven
// changes (a DPI change, for instance) that never dirty the widget.
var (
	repaintMargins = geometry.UniformMargins(10)
	repaintOffset  = geometry.Point{X: 10, Y: 10}
)

// isFixedSize reports whether a widget refuses resizing: the
// fixed-size window flag, equal non-empty min/max sizes, or a fixed
// size policy on both axes.
func isFixedSize(w widget.Widget) bool {
	if win, ok := w.(widget.Window); ok && win.Flags().Has(platform.WindowFlagFixedSize) {
		return true
	}
	minSize := w.MinimumSize()
	maxSize := w.MaximumSize()
	if !minSize.IsEmpty() && !maxSize.IsEmpty() && minSize == maxSize {
		return true
	}
	policy := w.SizePolicy()
	return policy.Horizontal == widget.PolicyFixed && policy.Vertical == widget.PolicyFixed
}

// ForceRepaint makes a widget redraw even when the paint-damage
// optimizer thinks it is clean, by perturbing its size and position and
// restoring the originals. Fixed-size widgets skip the size
// perturbation; minimized/maximized/fullscreen top-level windows skip
// geometry perturbation entirely.
func ForceRepaint(w widget.Widget) {
	if !errors.Assert(w != nil, "frameless.ForceRepaint", "nil widget") {
		return
	}
	// An ordinary repaint request first; it may or may not take.
	w.Update()

	win, isWindow := w.(widget.Window)
	if !isWindow || win.State() == platform.WindowStateNormal {
		// A widget will most likely repaint itself when its size
		// changes.
		if !isFixedSize(w) {
			size := w.Size()
			w.Resize(size.Shrink(repaintMargins))
			w.Resize(size.Grow(repaintMargins))
			w.Resize(size)
		}
		// Some widgets repaint only when their position changes.
		pos := w.Pos()
		w.Move(pos.Sub(repaintOffset))
		w.Move(pos.Add(repaintOffset))
		w.Move(pos)
	}
	w.Update()
}

// RepaintAllChildren forces the window and every descendant widget to
// redraw. A positive delay defers the whole pass with a one-shot timer.
func (h *Helper) RepaintAllChildren(delay time.Duration) {
	if h.window == nil {
		return
	}
	win := h.window
	run := func() {
		ForceRepaint(win)
		walkChildren(win, ForceRepaint)
	}
	if delay > 0 {
		h.loop.PostDelayed(delay, run)
	} else {
		run()
	}
}

// walkChildren applies fn to every descendant of w, depth first.
func walkChildren(w widget.Widget, fn func(widget.Widget)) {
	visitor, ok := w.(widget.ChildVisitor)
	if !ok {
		return
	}
	visitor.VisitChildren(func(child widget.Widget) {
		fn(child)
		walkChildren(child, fn)
	})
}
