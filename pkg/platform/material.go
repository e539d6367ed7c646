package platform

// MicaMaterial is the background material renderer a window may expose.
// It is implemented by the hosting toolkit, never by this module; the
// helper only toggles it as the blur-behind fallback.
type MicaMaterial interface {
	SetActive(active bool)
	Active() bool
}

// WindowBorder is the border painter a window may expose for the
// one-pixel frame drawn around frameless windows.
type WindowBorder interface {
	Thickness() int
	Update()
}
