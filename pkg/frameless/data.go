package frameless

import (
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// buttonSlots is the number of system button roles with their own slot;
// maximize and restore share one.
const buttonSlots = 5

// windowData is the mutable per-window helper state, shared by every
// helper instance bound to the same window.
type windowData struct {
	// contentExtended is true while frameless mode is attached.
	contentExtended bool

	// params is the callback table registered with the window-parameter
	// registry.
	params *platform.WindowParams

	// titleBar is the widget acting as the draggable title bar; a zero
	// handle means no draggable region.
	titleBar widget.Handle

	// hitTestExcludedWidgets are widgets inside the title bar that must
	// stay interactive instead of dragging the window.
	hitTestExcludedWidgets []widget.Handle

	// hitTestExcludedRects are literal regions excluded the same way.
	hitTestExcludedRects []geometry.Rect

	// buttons holds the system button slots, indexed by buttonSlot.
	buttons [buttonSlots]widget.Handle

	// instances are all helpers bound to this window; each receives
	// identical event notifications.
	instances []*Helper
}

// windowTable is the process-wide state table, keyed by stable window
// identity so lookups survive object moves. UI goroutine only.
var windowTable = make(map[platform.WindowID]*windowData)

// lookupWindowData returns the record for a window, creating it on
// first access.
func lookupWindowData(id platform.WindowID) *windowData {
	if data, ok := windowTable[id]; ok {
		return data
	}
	data := &windowData{}
	windowTable[id] = data
	return data
}

// findWindowData returns the record for a window without creating one.
func findWindowData(id platform.WindowID) (*windowData, bool) {
	data, ok := windowTable[id]
	return data, ok
}

// eraseWindowData removes the record for a window.
func eraseWindowData(id platform.WindowID) {
	delete(windowTable, id)
}

// buttonSlot maps a role to its slot index, folding restore onto
// maximize. Returns -1 for the unknown role.
func buttonSlot(b platform.SystemButton) int {
	switch b {
	case platform.SystemButtonWindowIcon:
		return 0
	case platform.SystemButtonHelp:
		return 1
	case platform.SystemButtonMinimize:
		return 2
	case platform.SystemButtonMaximize, platform.SystemButtonRestore:
		return 3
	case platform.SystemButtonClose:
		return 4
	default:
		return -1
	}
}

// buttonPriority is the fixed hit-test order: first match wins.
var buttonPriority = [buttonSlots]platform.SystemButton{
	platform.SystemButtonWindowIcon,
	platform.SystemButtonHelp,
	platform.SystemButtonMinimize,
	platform.SystemButtonMaximize,
	platform.SystemButtonClose,
}

// ResetForTest empties the per-window state table. Tests call it to
// isolate window state.
func ResetForTest() {
	windowTable = make(map[platform.WindowID]*windowData)
}
