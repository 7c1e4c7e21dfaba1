package platform

import (
	"errors"

	"deepworktimer/internal/core/model"
)

// ErrNoHandle is returned when a query needs a native window that does not
// exist yet.
var ErrNoHandle = errors.New("native window handle unavailable")

// WindowHandle is an opaque native window handle. Zero means none.
type WindowHandle uintptr

// WindowControl drives native window styles and geometry. Mutating calls on a
// zero handle are no-ops.
type WindowControl interface {
	SetClickThrough(handle WindowHandle, enabled bool) error
	IsClickThrough(handle WindowHandle) (bool, error)
	Bounds(handle WindowHandle) (model.Rect, error)
	Move(handle WindowHandle, point model.Point) error
	SetTopmost(handle WindowHandle) error
	SetOpacity(handle WindowHandle, opacity float64) error
}

// NewWindowControl returns the control for this OS.
func NewWindowControl() WindowControl {
	return &nativeWindows{}
}

// Monitors enumerates physical displays in OS order.
type Monitors struct{}

// NewMonitorSource returns the monitor enumerator for this OS.
func NewMonitorSource() *Monitors {
	return &Monitors{}
}

func opacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity*255 + 0.5)
}
