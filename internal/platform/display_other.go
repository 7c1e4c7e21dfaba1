//go:build !windows

package platform

import "deepworktimer/internal/core/model"

// nativeWindows has no native style access outside Windows. The overlay never
// obtains a handle there, so every call takes the zero-handle path.
type nativeWindows struct{}

func (control *nativeWindows) SetClickThrough(handle WindowHandle, enabled bool) error {
	if handle == 0 {
		return nil
	}
	return ErrUnsupported
}

func (control *nativeWindows) IsClickThrough(handle WindowHandle) (bool, error) {
	if handle == 0 {
		return false, ErrNoHandle
	}
	return false, ErrUnsupported
}

func (control *nativeWindows) Bounds(handle WindowHandle) (model.Rect, error) {
	if handle == 0 {
		return model.Rect{}, ErrNoHandle
	}
	return model.Rect{}, ErrUnsupported
}

func (control *nativeWindows) Move(handle WindowHandle, point model.Point) error {
	if handle == 0 {
		return nil
	}
	return ErrUnsupported
}

func (control *nativeWindows) SetTopmost(handle WindowHandle) error {
	if handle == 0 {
		return nil
	}
	return ErrUnsupported
}

func (control *nativeWindows) SetOpacity(handle WindowHandle, opacity float64) error {
	if handle == 0 {
		return nil
	}
	return ErrUnsupported
}

func (monitors *Monitors) ListMonitors() ([]model.Display, error) {
	return nil, ErrUnsupported
}

func (monitors *Monitors) MonitorFromRect(bounds model.Rect) (int, bool) {
	return 0, false
}
