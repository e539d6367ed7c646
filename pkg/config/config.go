// Package config holds the process-wide behavior flags consumed by the
// frameless helper. The flags are read-only from the helper's point of
// view: the hosting application sets them at startup, either in code or
// by loading a YAML file.
package config

import "time"

// Option identifies a process-wide behavior flag.
type Option int

const (
	// CenterWindowBeforeShow centers a window on its screen once the
	// platform window has settled after attach.
	CenterWindowBeforeShow Option = iota
	// EnableBlurBehindWindow turns on blur-behind (or its material
	// fallback) for every attached window.
	EnableBlurBehindWindow
)

// DefaultReadyWaitTime is how long attach waits before trusting the
// platform window's geometry. Native window creation can reset position
// and size shortly after the handle exists, so geometry adjustments made
// too early are silently discarded by the window system.
const DefaultReadyWaitTime = 100 * time.Millisecond

// Config is a set of option flags plus tunables.
type Config struct {
	options       map[Option]bool
	readyWaitTime time.Duration
}

// New returns a Config with every option off and default tunables.
func New() *Config {
	return &Config{
		options:       make(map[Option]bool),
		readyWaitTime: DefaultReadyWaitTime,
	}
}

// IsSet reports whether the option is on.
func (c *Config) IsSet(opt Option) bool {
	return c.options[opt]
}

// Set turns the option on or off.
func (c *Config) Set(opt Option, on bool) {
	c.options[opt] = on
}

// ReadyWaitTime returns the deferred-ready delay.
func (c *Config) ReadyWaitTime() time.Duration {
	return c.readyWaitTime
}

// SetReadyWaitTime overrides the deferred-ready delay.
func (c *Config) SetReadyWaitTime(d time.Duration) {
	c.readyWaitTime = d
}

// current is the process-wide configuration.
var current = New()

// Current returns the process-wide configuration.
func Current() *Config {
	return current
}

// SetCurrent replaces the process-wide configuration. Passing nil
// restores defaults. Tests use this to isolate option state.
func SetCurrent(c *Config) {
	if c == nil {
		c = New()
	}
	current = c
}
