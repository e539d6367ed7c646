package widget

import "github.com/go-drift/frameless/pkg/errors"

// Handle is a weak reference to a registered widget: a generation-
// indexed slot in the process-wide arena. Resolving a handle whose
// widget has been released fails cleanly, so a destroyed widget is
// indistinguishable from an empty slot and never a dangling access.
//
// The zero Handle is the nil reference and never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the nil reference.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot struct {
	w   Widget
	gen uint32
	// live distinguishes a released slot from an occupied one; the
	// generation alone is not enough because it is only bumped on
	// release.
	live bool
}

// arena state. UI goroutine only, like the rest of the toolkit.
var (
	slots []slot
	free  []uint32
)

// Register inserts a widget into the arena and returns its handle.
// The hosting toolkit calls this when the widget is created (or first
// handed to the helper) and Release when it is destroyed.
func Register(w Widget) Handle {
	if !errors.Assert(w != nil, "widget.Register", "nil widget") {
		return Handle{}
	}
	if n := len(free); n > 0 {
		idx := free[n-1]
		free = free[:n-1]
		slots[idx].w = w
		slots[idx].live = true
		return Handle{index: idx, gen: slots[idx].gen}
	}
	slots = append(slots, slot{w: w, gen: 1, live: true})
	return Handle{index: uint32(len(slots) - 1), gen: 1}
}

// Release invalidates the handle's slot. Outstanding handles to the
// widget stop resolving immediately; the slot is recycled with a new
// generation. Releasing a zero or stale handle is a no-op.
func Release(h Handle) {
	if !valid(h) {
		return
	}
	s := &slots[h.index]
	s.w = nil
	s.live = false
	s.gen++
	free = append(free, h.index)
}

// Resolve returns the widget behind the handle. The second result is
// false when the handle is zero or the widget has been released.
func Resolve(h Handle) (Widget, bool) {
	if !valid(h) {
		return nil, false
	}
	return slots[h.index].w, true
}

// Alive reports whether the handle still refers to a live widget.
func Alive(h Handle) bool {
	return valid(h)
}

func valid(h Handle) bool {
	if h.IsZero() || h.index >= uint32(len(slots)) {
		return false
	}
	s := slots[h.index]
	return s.live && s.gen == h.gen
}

// ResetForTest empties the arena. Tests call it to isolate handle
// state.
func ResetForTest() {
	slots = nil
	free = nil
}
