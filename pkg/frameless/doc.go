// Package frameless removes a window's native title bar while keeping
// standard window behaviors working: dragging, resizing, snapping,
// minimize/maximize/close buttons, the system menu, and DPI-aware
// repaints.
//
// The hosting toolkit designates one widget as the title bar and tags
// the widgets standing in for the system buttons; the helper translates
// pointer positions into semantic hit-test results that the platform
// shim uses to answer OS non-client-area queries. It does not render a
// pixel and never talks to the window system directly; all native
// operations go through a [platform.Adapter].
//
// # Usage
//
//	h := frameless.Get(myWindowContent)
//	h.SetTitleBar(titleBarHandle)
//	h.SetSystemButton(closeHandle, platform.SystemButtonClose)
//	h.SetHitTestVisible(searchBoxHandle, true)
//
// All operations must run on the UI goroutine; the package holds no
// locks. WaitForReady is the only blocking call, and it blocks by
// pumping the dispatch loop rather than spinning.
package frameless
