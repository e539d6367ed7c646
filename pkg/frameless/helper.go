package frameless

import (
	"time"

	"github.com/go-drift/frameless/pkg/config"
	"github.com/go-drift/frameless/pkg/dispatch"
	"github.com/go-drift/frameless/pkg/errors"
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// Helper binds frameless behavior to the top-level window of an owner
// widget. Several helpers may exist per window (one per embedding
// context); they share one windowData record and all observe the same
// events.
type Helper struct {
	owner  widget.Widget
	window widget.Window

	adapter  platform.Adapter
	registry platform.Registry
	loop     *dispatch.Loop
	cfg      *config.Config

	readyWaitTime time.Duration

	// platformReady is set once the deferred attach step has run and
	// window geometry can be trusted.
	platformReady bool

	// destroying suppresses event emission during teardown so listeners
	// never observe a half-destroyed helper.
	destroying bool

	blurBehindEnabled bool
	savedPolicy       widget.SizePolicy
	savedBackground   uint32

	listeners map[Event][]*listener
}

// Option configures a Helper at construction.
type Option func(*Helper)

// WithAdapter injects the platform adapter. Defaults to the no-op
// adapter.
func WithAdapter(a platform.Adapter) Option {
	return func(h *Helper) {
		if a != nil {
			h.adapter = a
		}
	}
}

// WithRegistry injects the window-parameter registry. Defaults to
// platform.DefaultManager.
func WithRegistry(r platform.Registry) Option {
	return func(h *Helper) {
		if r != nil {
			h.registry = r
		}
	}
}

// WithLoop injects the dispatch loop deferred work is scheduled on.
// Defaults to dispatch.Main.
func WithLoop(l *dispatch.Loop) Option {
	return func(h *Helper) {
		if l != nil {
			h.loop = l
		}
	}
}

// WithConfig injects the process-wide configuration. Defaults to
// config.Current().
func WithConfig(c *config.Config) Option {
	return func(h *Helper) {
		if c != nil {
			h.cfg = c
		}
	}
}

// New creates a helper for the window containing owner. The helper is
// detached until ExtendsContentIntoTitleBar(true) is called.
func New(owner widget.Widget, opts ...Option) *Helper {
	if !errors.Assert(owner != nil, "frameless.New", "nil owner widget") {
		return nil
	}
	h := &Helper{
		owner:    owner,
		adapter:  platform.NoopAdapter{},
		registry: platform.DefaultManager,
		loop:     dispatch.Main,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.cfg == nil {
		h.cfg = config.Current()
	}
	if h.readyWaitTime == 0 {
		h.readyWaitTime = h.cfg.ReadyWaitTime()
	}
	return h
}

// Get returns the helper already bound to owner's window, or creates
// one and immediately extends content into the title bar. This is the
// usual entry point for hosting toolkits.
func Get(owner widget.Widget, opts ...Option) *Helper {
	if !errors.Assert(owner != nil, "frameless.Get", "nil owner widget") {
		return nil
	}
	if win := owner.Window(); win != nil {
		if data, ok := findWindowData(win.ID()); ok && len(data.instances) > 0 {
			return data.instances[0]
		}
	}
	h := New(owner, opts...)
	if h != nil {
		h.ExtendsContentIntoTitleBar(true)
	}
	return h
}

// Window returns the top-level window the helper is attached to, or
// nil while detached.
func (h *Helper) Window() widget.Window {
	return h.window
}

// IsReady reports whether the deferred platform-ready step has run.
func (h *Helper) IsReady() bool {
	return h.platformReady
}

// ReadyWaitTime returns the delay between attach and the deferred
// platform-ready step.
func (h *Helper) ReadyWaitTime() time.Duration {
	return h.readyWaitTime
}

// SetReadyWaitTime overrides the deferred-ready delay for this helper.
// It affects the next attach only.
func (h *Helper) SetReadyWaitTime(d time.Duration) {
	if d < 0 || h.readyWaitTime == d {
		return
	}
	h.readyWaitTime = d
}

// windowData returns the shared record for the attached window,
// creating it lazily. Returns nil while detached.
func (h *Helper) windowData() *windowData {
	if h.window == nil {
		return nil
	}
	return lookupWindowData(h.window.ID())
}

// TitleBar returns the handle of the widget acting as title bar, or
// the zero handle.
func (h *Helper) TitleBar() widget.Handle {
	if data := h.windowData(); data != nil {
		return data.titleBar
	}
	return widget.Handle{}
}

// SetTitleBar designates the widget acting as the draggable title bar.
func (h *Helper) SetTitleBar(hd widget.Handle) {
	if !errors.Assert(!hd.IsZero(), "frameless.SetTitleBar", "zero widget handle") {
		return
	}
	data := h.windowData()
	if data == nil || data.titleBar == hd {
		return
	}
	data.titleBar = hd
	h.emitForAllInstances(EventTitleBarChanged)
}

// SetSystemButton assigns a widget to a system button role. Assigning
// a role again overwrites the previous widget without touching the
// other slots.
func (h *Helper) SetSystemButton(hd widget.Handle, role platform.SystemButton) {
	if !errors.Assert(!hd.IsZero(), "frameless.SetSystemButton", "zero widget handle") {
		return
	}
	slot := buttonSlot(role)
	if !errors.Assert(slot >= 0, "frameless.SetSystemButton", "unknown button role") {
		return
	}
	data := h.windowData()
	if data == nil {
		return
	}
	data.buttons[slot] = hd
}

// SetHitTestVisible marks a widget inside the title bar as interactive:
// visible=true excludes its rectangle from the draggable region,
// visible=false removes the exclusion again.
func (h *Helper) SetHitTestVisible(hd widget.Handle, visible bool) {
	if !errors.Assert(!hd.IsZero(), "frameless.SetHitTestVisible", "zero widget handle") {
		return
	}
	data := h.windowData()
	if data == nil {
		return
	}
	if visible {
		data.hitTestExcludedWidgets = append(data.hitTestExcludedWidgets, hd)
		return
	}
	kept := data.hitTestExcludedWidgets[:0]
	for _, existing := range data.hitTestExcludedWidgets {
		if existing != hd {
			kept = append(kept, existing)
		}
	}
	data.hitTestExcludedWidgets = kept
}

// SetHitTestVisibleRect excludes (or re-includes) a literal rectangle
// in window coordinates from the draggable region.
func (h *Helper) SetHitTestVisibleRect(rect geometry.Rect, visible bool) {
	if !errors.Assert(rect.IsValid(), "frameless.SetHitTestVisibleRect", "invalid rectangle") {
		return
	}
	data := h.windowData()
	if data == nil {
		return
	}
	if visible {
		data.hitTestExcludedRects = append(data.hitTestExcludedRects, rect)
		return
	}
	kept := data.hitTestExcludedRects[:0]
	for _, existing := range data.hitTestExcludedRects {
		if existing != rect {
			kept = append(kept, existing)
		}
	}
	data.hitTestExcludedRects = kept
}

// MicaMaterial returns the window's background material renderer, or
// nil when the window does not carry one.
func (h *Helper) MicaMaterial() platform.MicaMaterial {
	if h.window == nil {
		return nil
	}
	if host, ok := h.window.(widget.MicaHost); ok {
		return host.MicaMaterial()
	}
	return nil
}

// WindowBorder returns the window's border painter, or nil when the
// window does not carry one.
func (h *Helper) WindowBorder() platform.WindowBorder {
	if h.window == nil {
		return nil
	}
	if host, ok := h.window.(widget.BorderHost); ok {
		return host.WindowBorder()
	}
	return nil
}

// WindowProperty reads a named dynamic property from the window,
// falling back to def when absent.
func (h *Helper) WindowProperty(name string, def any) any {
	if !errors.Assert(name != "", "frameless.WindowProperty", "empty property name") {
		return def
	}
	if h.window == nil {
		return def
	}
	if v, ok := h.window.Property(name); ok {
		return v
	}
	return def
}

// SetWindowProperty writes a named dynamic property on the window.
func (h *Helper) SetWindowProperty(name string, value any) {
	if !errors.Assert(name != "", "frameless.SetWindowProperty", "empty property name") {
		return
	}
	if !errors.Assert(value != nil, "frameless.SetWindowProperty", "nil property value") {
		return
	}
	if h.window == nil {
		return
	}
	h.window.SetProperty(name, value)
}

// Destroy detaches the helper as part of owner teardown. No events are
// emitted once destruction has begun.
func (h *Helper) Destroy() {
	h.destroying = true
	h.ExtendsContentIntoTitleBar(false)
}
