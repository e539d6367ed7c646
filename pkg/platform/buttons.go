package platform

// SystemButton identifies one of the roles an OS title bar normally
// renders. Hit-testing checks them in declaration order: window icon
// first, close last.
type SystemButton int

const (
	// SystemButtonUnknown is the absent role; hit-test misses report it.
	SystemButtonUnknown SystemButton = iota
	SystemButtonWindowIcon
	SystemButtonHelp
	SystemButtonMinimize
	SystemButtonMaximize
	// SystemButtonRestore shares the maximize slot: a maximize button
	// toggles into a restore button when the window is maximized.
	SystemButtonRestore
	SystemButtonClose
)

func (b SystemButton) String() string {
	switch b {
	case SystemButtonWindowIcon:
		return "windowIcon"
	case SystemButtonHelp:
		return "help"
	case SystemButtonMinimize:
		return "minimize"
	case SystemButtonMaximize:
		return "maximize"
	case SystemButtonRestore:
		return "restore"
	case SystemButtonClose:
		return "close"
	default:
		return "unknown"
	}
}

// ButtonState is the visual feedback state of a system button.
type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHovered
	ButtonStatePressed
	ButtonStateReleased
)

func (s ButtonState) String() string {
	switch s {
	case ButtonStateHovered:
		return "hovered"
	case ButtonStatePressed:
		return "pressed"
	case ButtonStateReleased:
		return "released"
	default:
		return "normal"
	}
}

// Cursor identifies a pointer shape the helper may request during
// resize-border tracking.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorSizeVertical
	CursorSizeHorizontal
	CursorSizeDiagonalNWSE
	CursorSizeDiagonalNESW
	CursorSizeAll
)
