package platform

// Registry aggregates the per-window parameter tables process-wide.
// The frameless core registers one table per window at attach and
// removes it at detach; the platform shim looks tables up by window
// identity when answering OS queries. Implementations are keyed by
// WindowID, never by object address.
type Registry interface {
	AddWindow(id WindowID, params *WindowParams)
	RemoveWindow(id WindowID)
}

// Manager is the default map-backed Registry. All access happens on
// the UI goroutine.
type Manager struct {
	windows map[WindowID]*WindowParams
}

var _ Registry = (*Manager)(nil)

// DefaultManager is the process-wide registry used when no explicit
// registry is injected.
var DefaultManager = NewManager()

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{windows: make(map[WindowID]*WindowParams)}
}

// AddWindow registers the parameter table for a window, replacing any
// previous table for the same identity.
func (m *Manager) AddWindow(id WindowID, params *WindowParams) {
	if params == nil {
		return
	}
	m.windows[id] = params
}

// RemoveWindow drops the parameter table for a window. Unknown
// identities are ignored.
func (m *Manager) RemoveWindow(id WindowID) {
	delete(m.windows, id)
}

// Window returns the parameter table for a window, or nil.
func (m *Manager) Window(id WindowID) *WindowParams {
	return m.windows[id]
}

// Count returns the number of registered windows.
func (m *Manager) Count() int {
	return len(m.windows)
}
