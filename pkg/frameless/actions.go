package frameless

import (
	"math"

	"github.com/go-drift/frameless/pkg/errors"
	"github.com/go-drift/frameless/pkg/geometry"
	"github.com/go-drift/frameless/pkg/platform"
	"github.com/go-drift/frameless/pkg/widget"
)

// transparentColor is the window background used while native blur is
// active, 0xAARRGGBB.
const transparentColor uint32 = 0x00000000

// StartSystemMove hands a title-bar drag at the given window-local
// position to the window manager.
func (h *Helper) StartSystemMove(pos geometry.Point) {
	if h.window == nil {
		return
	}
	if err := h.adapter.StartSystemMove(h.window.ID(), pos); err != nil {
		errors.Report(&errors.Error{
			Op: "frameless.StartSystemMove", Kind: errors.KindPlatform,
			Err: err, Window: uint64(h.window.ID()),
		})
	}
}

// StartSystemResize hands a border drag on the given edges to the
// window manager. An empty edge set is a no-op.
func (h *Helper) StartSystemResize(edges geometry.Edges, pos geometry.Point) {
	if !errors.Assert(!edges.IsEmpty(), "frameless.StartSystemResize", "empty edge set") {
		return
	}
	if h.window == nil {
		return
	}
	if err := h.adapter.StartSystemResize(h.window.ID(), edges, pos); err != nil {
		errors.Report(&errors.Error{
			Op: "frameless.StartSystemResize", Kind: errors.KindPlatform,
			Err: err, Window: uint64(h.window.ID()),
		})
	}
}

// ShowSystemMenu opens the native window menu at a global position in
// device-independent pixels. Best effort: platforms without a window
// menu log and do nothing.
func (h *Helper) ShowSystemMenu(pos geometry.Point) {
	if h.window == nil {
		return
	}
	native := scaleToNative(pos, h.window.DevicePixelRatio())
	if err := h.adapter.ShowSystemMenu(h.window.ID(), native); err != nil {
		errors.Report(&errors.Error{
			Op: "frameless.ShowSystemMenu", Kind: errors.KindPlatform,
			Err: err, Window: uint64(h.window.ID()),
		})
	}
}

// scaleToNative converts device-independent coordinates to native
// pixels.
func scaleToNative(pos geometry.Point, dpr float64) geometry.Point {
	if dpr <= 0 {
		dpr = 1
	}
	return geometry.Point{
		X: int(math.Round(float64(pos.X) * dpr)),
		Y: int(math.Round(float64(pos.Y) * dpr)),
	}
}

// MoveWindowToDesktopCenter centers the window within its screen's
// work area.
func (h *Helper) MoveWindowToDesktopCenter() {
	if h.window == nil {
		return
	}
	screen := h.window.Screen()
	if screen == nil {
		errors.Report(errors.New("frameless.MoveWindowToDesktopCenter",
			errors.KindGeometry, "window has no screen"))
		return
	}
	work := screen.WorkArea
	size := h.window.Size()
	h.window.Move(geometry.Point{
		X: work.X + (work.Width-size.Width)/2,
		Y: work.Y + (work.Height-size.Height)/2,
	})
}

// BringWindowToFront un-minimizes and shows the window as needed, then
// raises and activates it.
func (h *Helper) BringWindowToFront() {
	if h.window == nil {
		return
	}
	if !h.window.Visible() {
		h.window.Show()
	}
	if h.window.State() == platform.WindowStateMinimized {
		h.window.SetState(platform.WindowStateNormal)
	}
	h.window.Raise()
	h.window.Activate()
	if err := h.adapter.BringToFront(h.window.ID()); err != nil {
		errors.Report(&errors.Error{
			Op: "frameless.BringWindowToFront", Kind: errors.KindPlatform,
			Err: err, Window: uint64(h.window.ID()),
		})
	}
}

// IsWindowFixedSize reports whether the window cannot be interactively
// resized: the fixed-size window flag, pinned min/max sizes, or a
// fixed size policy on both axes.
func (h *Helper) IsWindowFixedSize() bool {
	if h.window == nil {
		return false
	}
	return isFixedSize(h.window)
}

// SetWindowFixedSize pins or unpins the window size. Pinning saves the
// current size policy and clamps min and max to the current size;
// unpinning restores the policy and lifts the clamp. OS edge snapping
// is disabled while pinned.
func (h *Helper) SetWindowFixedSize(value bool) {
	if h.window == nil {
		return
	}
	if h.IsWindowFixedSize() == value {
		return
	}
	if value {
		h.savedPolicy = h.window.SizePolicy()
		h.window.SetSizePolicy(widget.SizePolicy{Horizontal: widget.PolicyFixed, Vertical: widget.PolicyFixed})
		size := h.window.Size()
		h.window.SetMinimumSize(size)
		h.window.SetMaximumSize(size)
	} else {
		h.window.SetSizePolicy(h.savedPolicy)
		h.window.SetMinimumSize(widget.DefaultMinimumWindowSize)
		h.window.SetMaximumSize(geometry.Size{Width: widget.SizeMax, Height: widget.SizeMax})
	}
	if err := h.adapter.SetSnappingEnabled(h.window.ID(), !value); err != nil {
		errors.Report(&errors.Error{
			Op: "frameless.SetWindowFixedSize", Kind: errors.KindPlatform,
			Err: err, Window: uint64(h.window.ID()),
		})
	}
	h.emitForAllInstances(EventWindowFixedSizeChanged)
}

// IsBlurBehindWindowEnabled reports whether blur-behind (native or
// material fallback) is active.
func (h *Helper) IsBlurBehindWindowEnabled() bool {
	return h.blurBehindEnabled
}

// SetBlurBehindWindowEnabled toggles compositor blur behind the
// window. When the platform cannot blur, the window's material
// emulation is used instead; when neither is available the request is
// dropped with a logged notice.
func (h *Helper) SetBlurBehindWindowEnabled(enable bool) {
	if h.window == nil {
		return
	}
	if h.blurBehindEnabled == enable {
		return
	}
	if h.adapter.BlurBehindSupported() {
		if bg, ok := h.window.(widget.Backgrounder); ok {
			if enable {
				h.savedBackground = bg.BackgroundColor()
				bg.SetBackgroundColor(transparentColor)
			} else {
				bg.SetBackgroundColor(h.savedBackground)
			}
		}
		if err := h.adapter.SetBlurBehind(h.window.ID(), enable); err != nil {
			errors.Report(&errors.Error{
				Op: "frameless.SetBlurBehindWindowEnabled", Kind: errors.KindPlatform,
				Err: err, Window: uint64(h.window.ID()),
			})
			return
		}
		h.blurBehindEnabled = enable
		h.emitForAllInstances(EventBlurBehindChanged)
		return
	}
	if mica := h.MicaMaterial(); mica != nil {
		h.blurBehindEnabled = enable
		mica.SetActive(enable)
		h.emitForAllInstances(EventBlurBehindChanged)
		return
	}
	errors.Report(errors.New("frameless.SetBlurBehindWindowEnabled",
		errors.KindPlatform, "blur behind window is not supported on this platform"))
}
