//go:build linux

// Package x11 implements the platform adapter for X11 window managers
// using EWMH client messages. Everything here is best effort: window
// managers are free to ignore any request, and the frameless core is
// built to tolerate that.
package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
)

// _NET_WM_MOVERESIZE directions.
const (
	moveResizeSizeTopLeft     = 0
	moveResizeSizeTop         = 1
	moveResizeSizeTopRight    = 2
	moveResizeSizeRight       = 3
	moveResizeSizeBottomRight = 4
	moveResizeSizeBottom      = 5
	moveResizeSizeBottomLeft  = 6
	moveResizeSizeLeft        = 7
	moveResizeMove            = 8
)

// sourceIndication marks requests as coming from a normal application.
const sourceIndication = 1

// Adapter talks to the X server through an xgbutil connection.
// X11 reports coordinates in native pixels, and this adapter treats
// device-independent and native pixels as identical; HiDPI scaling on
// X11 happens client-side.
type Adapter struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	// wmName caches the EWMH window manager name for capability checks.
	wmName    string
	wmChecked bool
}

var _ platform.Adapter = (*Adapter)(nil)

// New opens a fresh X11 connection.
func New() (*Adapter, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewWithConn(xu), nil
}

// NewWithConn wraps an existing xgbutil connection. The caller keeps
// ownership of the connection's event loop.
func NewWithConn(xu *xgbutil.XUtil) *Adapter {
	return &Adapter{xu: xu, root: xu.RootWin()}
}

// Close disconnects from the X server.
func (a *Adapter) Close() {
	a.xu.Conn().Close()
}

// StartSystemMove asks the window manager to start an interactive move
// driven by the current pointer drag.
func (a *Adapter) StartSystemMove(id platform.WindowID, _ geometry.Point) error {
	x, y, err := a.pointerRoot()
	if err != nil {
		return err
	}
	return a.moveResizeMessage(xproto.Window(id), x, y, moveResizeMove)
}

// StartSystemResize asks the window manager to start an interactive
// resize on the given edges.
func (a *Adapter) StartSystemResize(id platform.WindowID, edges geometry.Edges, _ geometry.Point) error {
	direction, ok := resizeDirection(edges)
	if !ok {
		return fmt.Errorf("unsupported edge combination %#x", uint8(edges))
	}
	x, y, err := a.pointerRoot()
	if err != nil {
		return err
	}
	return a.moveResizeMessage(xproto.Window(id), x, y, direction)
}

// resizeDirection maps an edge set onto an EWMH direction.
func resizeDirection(edges geometry.Edges) (uint32, bool) {
	switch edges {
	case geometry.EdgeTop | geometry.EdgeLeft:
		return moveResizeSizeTopLeft, true
	case geometry.EdgeTop:
		return moveResizeSizeTop, true
	case geometry.EdgeTop | geometry.EdgeRight:
		return moveResizeSizeTopRight, true
	case geometry.EdgeRight:
		return moveResizeSizeRight, true
	case geometry.EdgeBottom | geometry.EdgeRight:
		return moveResizeSizeBottomRight, true
	case geometry.EdgeBottom:
		return moveResizeSizeBottom, true
	case geometry.EdgeBottom | geometry.EdgeLeft:
		return moveResizeSizeBottomLeft, true
	case geometry.EdgeLeft:
		return moveResizeSizeLeft, true
	default:
		return 0, false
	}
}

// moveResizeMessage sends _NET_WM_MOVERESIZE to the root window.
func (a *Adapter) moveResizeMessage(win xproto.Window, x, y int, direction uint32) error {
	const leftButton = 1
	return a.clientMessage(win, "_NET_WM_MOVERESIZE",
		uint32(x), uint32(y), direction, leftButton, sourceIndication)
}

// ShowSystemMenu asks the window manager to open its window menu. Only
// GTK-aware window managers (GNOME Shell, KWin) honor the message.
func (a *Adapter) ShowSystemMenu(id platform.WindowID, nativePos geometry.Point) error {
	const deviceID = 0
	return a.clientMessage(xproto.Window(id), "_GTK_SHOW_WINDOW_MENU",
		deviceID, uint32(nativePos.X), uint32(nativePos.Y), 0, 0)
}

// SetBlurBehind toggles the KWin blur region property. Enabling with
// no region values blurs the whole window.
func (a *Adapter) SetBlurBehind(id platform.WindowID, enabled bool) error {
	const blurProp = "_KDE_NET_WM_BLUR_BEHIND_REGION"
	win := xproto.Window(id)
	atom, err := a.internAtom(blurProp)
	if err != nil {
		return err
	}
	if !enabled {
		return xproto.DeletePropertyChecked(a.xu.Conn(), win, atom).Check()
	}
	cardinal, err := a.internAtom("CARDINAL")
	if err != nil {
		return err
	}
	return xproto.ChangePropertyChecked(a.xu.Conn(), xproto.PropModeReplace,
		win, atom, cardinal, 32, 0, nil).Check()
}

// BlurBehindSupported reports whether the running window manager
// understands the KWin blur protocol.
func (a *Adapter) BlurBehindSupported() bool {
	return strings.Contains(a.windowManagerName(), "KWin")
}

// FrameBorderVisible is always false on X11: frameless windows carry
// no native frame indicator, so both side resize bands are handled by
// the toolkit.
func (a *Adapter) FrameBorderVisible() bool {
	return false
}

// SetSnappingEnabled is a no-op on X11; edge snapping is a window
// manager policy with no per-window EWMH toggle.
func (a *Adapter) SetSnappingEnabled(platform.WindowID, bool) error {
	return nil
}

// BringToFront activates and raises the window via _NET_ACTIVE_WINDOW.
func (a *Adapter) BringToFront(id platform.WindowID) error {
	const pagerSource = 2
	return a.clientMessage(xproto.Window(id), "_NET_ACTIVE_WINDOW",
		pagerSource, 0, 0, 0, 0)
}

// CursorPos returns the global pointer position.
func (a *Adapter) CursorPos() geometry.Point {
	x, y, err := a.pointerRoot()
	if err != nil {
		return geometry.Point{}
	}
	return geometry.Point{X: x, Y: y}
}

// ActiveScreen returns the current desktop's work area as a Screen.
// X11 exposes one work area per virtual desktop, not per monitor, so
// multi-monitor hosts should prefer their toolkit's screen object.
func (a *Adapter) ActiveScreen() (*platform.Screen, error) {
	rootGeom, err := xproto.GetGeometry(a.xu.Conn(), xproto.Drawable(a.root)).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get root geometry: %w", err)
	}
	full := geometry.Rect{Width: int(rootGeom.Width), Height: int(rootGeom.Height)}
	work := full

	if areas, err := ewmh.WorkareaGet(a.xu); err == nil && len(areas) > 0 {
		idx := 0
		if desktop, err := ewmh.CurrentDesktopGet(a.xu); err == nil && int(desktop) < len(areas) {
			idx = int(desktop)
		}
		wa := areas[idx]
		work = geometry.Rect{
			X: int(wa.X), Y: int(wa.Y),
			Width: int(wa.Width), Height: int(wa.Height),
		}
	}
	return &platform.Screen{
		Name:             "X11",
		Geometry:         full,
		WorkArea:         work,
		DevicePixelRatio: 1,
	}, nil
}

// windowManagerName reads _NET_SUPPORTING_WM_CHECK lazily.
func (a *Adapter) windowManagerName() string {
	if a.wmChecked {
		return a.wmName
	}
	a.wmChecked = true
	if name, err := ewmh.GetEwmhWM(a.xu); err == nil {
		a.wmName = name
	}
	return a.wmName
}

// pointerRoot returns the pointer position in root coordinates.
func (a *Adapter) pointerRoot() (int, int, error) {
	pointer, err := xproto.QueryPointer(a.xu.Conn(), a.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}

// internAtom resolves an atom name.
func (a *Adapter) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(a.xu.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

// clientMessage sends a 32-bit format client message to the root
// window on behalf of win, with the substructure masks EWMH requires.
func (a *Adapter) clientMessage(win xproto.Window, atomName string, data ...uint32) error {
	atom, err := a.internAtom(atomName)
	if err != nil {
		return err
	}
	payload := make([]uint32, 5)
	copy(payload, data)
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   atom,
		Data:   xproto.ClientMessageDataUnionData32New(payload),
	}
	return xproto.SendEventChecked(
		a.xu.Conn(),
		false,
		a.root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}
