package frameless

import "github.com/go-drift/frameless/pkg/errors"

// Event names a state-change notification observable on a helper.
// Every helper instance bound to the same window receives the same
// notifications, in the order the triggering operation emits them.
type Event string

const (
	// EventWindowChanged fires when the helper binds to or unbinds from
	// a window.
	EventWindowChanged Event = "windowChanged"
	// EventReady fires once the platform window geometry has settled
	// after attach and is safe to modify.
	EventReady Event = "ready"
	// EventExtendsContentChanged fires when frameless mode is turned on
	// or off.
	EventExtendsContentChanged Event = "extendsContentIntoTitleBarChanged"
	// EventWindowFixedSizeChanged fires when the fixed-size pin toggles.
	EventWindowFixedSizeChanged Event = "windowFixedSizeChanged"
	// EventBlurBehindChanged fires when blur-behind (or its material
	// fallback) toggles.
	EventBlurBehindChanged Event = "blurBehindWindowEnabledChanged"
	// EventTitleBarChanged fires when a different widget becomes the
	// title bar.
	EventTitleBarChanged Event = "titleBarWidgetChanged"
)

// On registers a listener for an event on this helper instance and
// returns a function that removes it.
func (h *Helper) On(event Event, fn func()) (cancel func()) {
	if !errors.Assert(event != "", "frameless.On", "empty event name") {
		return func() {}
	}
	if !errors.Assert(fn != nil, "frameless.On", "nil listener") {
		return func() {}
	}
	if h.listeners == nil {
		h.listeners = make(map[Event][]*listener)
	}
	l := &listener{fn: fn}
	h.listeners[event] = append(h.listeners[event], l)
	return func() { l.removed = true }
}

type listener struct {
	fn      func()
	removed bool
}

// emit notifies this instance's listeners for one event. Listeners
// registered by a running listener are not called until the next emit.
func (h *Helper) emit(event Event) {
	current := h.listeners[event]
	for _, l := range current {
		if !l.removed {
			l.fn()
		}
	}
}

// emitForAllInstances notifies every helper bound to the current
// window. An unbound helper notifies only itself, which keeps teardown
// notifications observable after the shared record is gone.
func (h *Helper) emitForAllInstances(event Event) {
	if h.window == nil {
		h.emit(event)
		return
	}
	data, ok := findWindowData(h.window.ID())
	if !ok || len(data.instances) == 0 {
		h.emit(event)
		return
	}
	for _, instance := range data.instances {
		instance.emit(event)
	}
}

// notifyInstances delivers an event to an explicit instance list; used
// when the shared record has already been erased.
func notifyInstances(instances []*Helper, event Event) {
	for _, instance := range instances {
		instance.emit(event)
	}
}
