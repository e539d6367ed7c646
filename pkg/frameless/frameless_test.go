package frameless

import (
	"testing"
	"time"

	"github.com/go-drift/frameless/pkg/config"
	"github.com/go-drift/frameless/pkg/dispatch"
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// Mock widgets and adapter for helper scenarios.

// fakeWidget implements widget.Widget with recordable geometry.
type fakeWidget struct {
	visible bool
	enabled bool
	pos     geometry.Point
	size    geometry.Size
	minSize geometry.Size
	maxSize geometry.Size
	policy  widget.SizePolicy

	// winOffset is the widget's origin in window coordinates.
	winOffset    geometry.Point
	parentWindow widget.Window
	underPointer bool

	updates int
	moves   []geometry.Point
	resizes []geometry.Size
}

func newFakeWidget(offset geometry.Point, size geometry.Size) *fakeWidget {
	return &fakeWidget{
		visible:   true,
		enabled:   true,
		winOffset: offset,
		pos:       offset,
		size:      size,
		maxSize:   geometry.Size{Width: widget.SizeMax, Height: widget.SizeMax},
	}
}

func (f *fakeWidget) Visible() bool              { return f.visible }
func (f *fakeWidget) Enabled() bool              { return f.enabled }
func (f *fakeWidget) Pos() geometry.Point        { return f.pos }
func (f *fakeWidget) Size() geometry.Size        { return f.size }
func (f *fakeWidget) MinimumSize() geometry.Size { return f.minSize }
func (f *fakeWidget) MaximumSize() geometry.Size { return f.maxSize }

func (f *fakeWidget) Move(pos geometry.Point) {
	f.pos = pos
	f.moves = append(f.moves, pos)
}

func (f *fakeWidget) Resize(size geometry.Size) {
	f.size = size
	f.resizes = append(f.resizes, size)
}

func (f *fakeWidget) SizePolicy() widget.SizePolicy          { return f.policy }
func (f *fakeWidget) SetSizePolicy(p widget.SizePolicy)      { f.policy = p }
func (f *fakeWidget) SetMinimumSize(size geometry.Size)      { f.minSize = size }
func (f *fakeWidget) SetMaximumSize(size geometry.Size)      { f.maxSize = size }
func (f *fakeWidget) Window() widget.Window                  { return f.parentWindow }
func (f *fakeWidget) MapToWindow(p geometry.Point) geometry.Point { return p.Add(f.winOffset) }
func (f *fakeWidget) UnderPointer() bool                     { return f.underPointer }
func (f *fakeWidget) Update()                                { f.updates++ }

// fakeButton additionally records simulated pointer feedback.
type fakeButton struct {
	fakeWidget
	states     []platform.ButtonState
	lastGlobal geometry.Point
	lastScene  geometry.Point
	lastLocal  geometry.Point
	lastUnder  bool
}

func newFakeButton(offset geometry.Point, size geometry.Size) *fakeButton {
	return &fakeButton{fakeWidget: *newFakeWidget(offset, size)}
}

func (b *fakeButton) SimulateButtonState(state platform.ButtonState, global, scene, local geometry.Point, underPointer bool) {
	b.states = append(b.states, state)
	b.lastGlobal = global
	b.lastScene = scene
	b.lastLocal = local
	b.lastUnder = underPointer
}

// fakeWindow implements widget.Window and widget.Backgrounder.
type fakeWindow struct {
	fakeWidget
	id    platform.WindowID
	state platform.WindowState
	flags platform.WindowFlags

	screen *platform.Screen
	dpr    float64

	// globalOrigin is the window's top-left in global coordinates.
	globalOrigin geometry.Point

	attrs map[widget.Attribute]bool
	props map[string]any

	shown      int
	raised     int
	activated  int
	background uint32
}

func newFakeWindow(id platform.WindowID, size geometry.Size) *fakeWindow {
	w := &fakeWindow{
		fakeWidget: *newFakeWidget(geometry.Point{}, size),
		id:         id,
		state:      platform.WindowStateNormal,
		dpr:        1,
		screen: &platform.Screen{
			Name:             "test",
			Geometry:         geometry.Rect{Width: 1920, Height: 1080},
			WorkArea:         geometry.Rect{Width: 1920, Height: 1040},
			DevicePixelRatio: 1,
		},
		attrs:      make(map[widget.Attribute]bool),
		props:      make(map[string]any),
		background: 0xFF202020,
	}
	return w
}

func (w *fakeWindow) ID() platform.WindowID             { return w.id }
func (w *fakeWindow) Handle() uintptr                   { return uintptr(w.id) }
func (w *fakeWindow) Flags() platform.WindowFlags       { return w.flags }
func (w *fakeWindow) SetFlags(f platform.WindowFlags)   { w.flags = f }
func (w *fakeWindow) State() platform.WindowState       { return w.state }
func (w *fakeWindow) SetState(s platform.WindowState)   { w.state = s }
func (w *fakeWindow) Screen() *platform.Screen          { return w.screen }
func (w *fakeWindow) DevicePixelRatio() float64         { return w.dpr }
func (w *fakeWindow) Window() widget.Window             { return w }

func (w *fakeWindow) MapToGlobal(p geometry.Point) geometry.Point   { return p.Add(w.globalOrigin) }
func (w *fakeWindow) MapFromGlobal(p geometry.Point) geometry.Point { return p.Sub(w.globalOrigin) }

func (w *fakeWindow) Show() {
	w.visible = true
	w.shown++
}
func (w *fakeWindow) Raise()    { w.raised++ }
func (w *fakeWindow) Activate() { w.activated++ }

func (w *fakeWindow) TestAttribute(attr widget.Attribute) bool   { return w.attrs[attr] }
func (w *fakeWindow) SetAttribute(attr widget.Attribute, on bool) { w.attrs[attr] = on }

func (w *fakeWindow) Property(name string) (any, bool) {
	v, ok := w.props[name]
	return v, ok
}
func (w *fakeWindow) SetProperty(name string, value any) { w.props[name] = value }

func (w *fakeWindow) SetCursor(platform.Cursor) {}
func (w *fakeWindow) UnsetCursor()              {}

func (w *fakeWindow) BackgroundColor() uint32       { return w.background }
func (w *fakeWindow) SetBackgroundColor(argb uint32) { w.background = argb }

// containerWindow is a fakeWindow with child widgets, for repaint walks.
type containerWindow struct {
	fakeWindow
	children []widget.Widget
}

func (c *containerWindow) VisitChildren(visit func(widget.Widget)) {
	for _, child := range c.children {
		visit(child)
	}
}

// micaWindow exposes a background material renderer.
type micaWindow struct {
	fakeWindow
	mica fakeMica
}

func (m *micaWindow) MicaMaterial() platform.MicaMaterial { return &m.mica }

type fakeMica struct {
	active bool
}

func (m *fakeMica) SetActive(active bool) { m.active = active }
func (m *fakeMica) Active() bool          { return m.active }

// recordingAdapter captures platform calls and lets tests flip the
// capability switches.
type recordingAdapter struct {
	platform.NoopAdapter

	frameBorder   bool
	blurSupported bool
	cursor        geometry.Point

	moveCalls   int
	resizeEdges []geometry.Edges
	menuPos     []geometry.Point
	blurCalls   []bool
	snapCalls   []bool
	frontCalls  int
}

func (a *recordingAdapter) StartSystemMove(platform.WindowID, geometry.Point) error {
	a.moveCalls++
	return nil
}

func (a *recordingAdapter) StartSystemResize(_ platform.WindowID, edges geometry.Edges, _ geometry.Point) error {
	a.resizeEdges = append(a.resizeEdges, edges)
	return nil
}

func (a *recordingAdapter) ShowSystemMenu(_ platform.WindowID, pos geometry.Point) error {
	a.menuPos = append(a.menuPos, pos)
	return nil
}

func (a *recordingAdapter) SetBlurBehind(_ platform.WindowID, enabled bool) error {
	a.blurCalls = append(a.blurCalls, enabled)
	return nil
}

func (a *recordingAdapter) BlurBehindSupported() bool { return a.blurSupported }
func (a *recordingAdapter) FrameBorderVisible() bool  { return a.frameBorder }

func (a *recordingAdapter) SetSnappingEnabled(_ platform.WindowID, enabled bool) error {
	a.snapCalls = append(a.snapCalls, enabled)
	return nil
}

func (a *recordingAdapter) BringToFront(platform.WindowID) error {
	a.frontCalls++
	return nil
}

func (a *recordingAdapter) CursorPos() geometry.Point { return a.cursor }

// testEnv bundles the isolated collaborators a helper test needs.
type testEnv struct {
	clock   *dispatch.FakeClock
	loop    *dispatch.Loop
	reg     *platform.Manager
	cfg     *config.Config
	adapter *recordingAdapter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ResetForTest()
	widget.ResetForTest()
	clock := dispatch.NewFakeClock()
	return &testEnv{
		clock:   clock,
		loop:    dispatch.NewLoopWithClock(clock),
		reg:     platform.NewManager(),
		cfg:     config.New(),
		adapter: &recordingAdapter{},
	}
}

func (e *testEnv) newHelper(owner widget.Widget) *Helper {
	return New(owner,
		WithAdapter(e.adapter),
		WithRegistry(e.reg),
		WithLoop(e.loop),
		WithConfig(e.cfg),
	)
}

// attach creates a helper for win and turns frameless mode on.
func (e *testEnv) attach(win widget.Window) *Helper {
	h := e.newHelper(win)
	h.ExtendsContentIntoTitleBar(true)
	return h
}

// settle advances past the deferred-ready delay and pumps the loop.
func (e *testEnv) settle() {
	e.clock.Advance(config.DefaultReadyWaitTime + time.Millisecond)
	e.loop.ProcessEvents()
}
