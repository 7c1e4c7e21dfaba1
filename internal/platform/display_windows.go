//go:build windows

package platform

import (
	"fmt"
	"sync"
	"unsafe"

	"deepworktimer/internal/core/model"

	"golang.org/x/sys/windows"
)

const (
	gwlExStyle            int32 = -20
	wsExTransparent             = 0x00000020
	wsExLayered                 = 0x00080000
	lwaAlpha                    = 0x2
	hwndTopmost                 = ^uintptr(0) // (HWND)-1
	swpNoSize                   = 0x0001
	swpNoMove                   = 0x0002
	swpNoZOrder                 = 0x0004
	swpNoActivate               = 0x0010
	monitorDefaultNearest       = 0x2
	monitorInfoFPrimary         = 0x1
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procEnumDisplayMonitors        = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW            = user32.NewProc("GetMonitorInfoW")
	procMonitorFromRect            = user32.NewProc("MonitorFromRect")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

func (r rect) model() model.Rect {
	return model.Rect{X: int(r.Left), Y: int(r.Top), Width: int(r.Right - r.Left), Height: int(r.Bottom - r.Top)}
}

type monitorInfoEx struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
	Device  [32]uint16
}

type nativeWindows struct{}

func (control *nativeWindows) exStyle(handle WindowHandle) (uintptr, error) {
	style, _, err := procGetWindowLongPtrW.Call(uintptr(handle), int32ToUintptr(gwlExStyle))
	if style == 0 && err != windows.ERROR_SUCCESS {
		return 0, fmt.Errorf("GetWindowLongPtrW: %w", err)
	}
	return style, nil
}

func (control *nativeWindows) SetClickThrough(handle WindowHandle, enabled bool) error {
	if handle == 0 {
		return nil
	}
	style, err := control.exStyle(handle)
	if err != nil {
		return fmt.Errorf("set click-through: %w", err)
	}
	updated := style | wsExLayered
	if enabled {
		updated |= wsExTransparent
	} else {
		updated &^= wsExTransparent
	}
	if updated == style {
		return nil
	}
	procSetWindowLongPtrW.Call(uintptr(handle), int32ToUintptr(gwlExStyle), updated)
	return nil
}

func (control *nativeWindows) IsClickThrough(handle WindowHandle) (bool, error) {
	if handle == 0 {
		return false, ErrNoHandle
	}
	style, err := control.exStyle(handle)
	if err != nil {
		return false, fmt.Errorf("query click-through: %w", err)
	}
	return style&wsExTransparent != 0, nil
}

func (control *nativeWindows) Bounds(handle WindowHandle) (model.Rect, error) {
	if handle == 0 {
		return model.Rect{}, ErrNoHandle
	}
	var bounds rect
	ret, _, err := procGetWindowRect.Call(uintptr(handle), uintptr(unsafe.Pointer(&bounds)))
	if ret == 0 {
		return model.Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return bounds.model(), nil
}

func (control *nativeWindows) Move(handle WindowHandle, point model.Point) error {
	if handle == 0 {
		return nil
	}
	ret, _, err := procSetWindowPos.Call(uintptr(handle), 0,
		uintptr(int32(point.X)), uintptr(int32(point.Y)), 0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (control *nativeWindows) SetTopmost(handle WindowHandle) error {
	if handle == 0 {
		return nil
	}
	ret, _, err := procSetWindowPos.Call(uintptr(handle), hwndTopmost, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos topmost: %w", err)
	}
	return nil
}

func (control *nativeWindows) SetOpacity(handle WindowHandle, opacity float64) error {
	if handle == 0 {
		return nil
	}
	style, err := control.exStyle(handle)
	if err != nil {
		return fmt.Errorf("set opacity: %w", err)
	}
	if style&wsExLayered == 0 {
		procSetWindowLongPtrW.Call(uintptr(handle), int32ToUintptr(gwlExStyle), style|wsExLayered)
	}
	ret, _, err := procSetLayeredWindowAttributes.Call(uintptr(handle), 0, uintptr(opacityToAlpha(opacity)), lwaAlpha)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes: %w", err)
	}
	return nil
}

// EnumDisplayMonitors reports monitors through a callback. The callback is
// created once and collects into enumerated while enumMu is held.
var (
	enumMu       sync.Mutex
	enumerated   []uintptr
	enumOnce     sync.Once
	enumCallback uintptr
)

func monitorHandles() ([]uintptr, error) {
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(func(hmonitor, hdc, clip, data uintptr) uintptr {
			enumerated = append(enumerated, hmonitor)
			return 1
		})
	})

	enumMu.Lock()
	defer enumMu.Unlock()
	enumerated = nil
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", err)
	}
	return append([]uintptr(nil), enumerated...), nil
}

// ListMonitors returns every display in EnumDisplayMonitors order.
func (monitors *Monitors) ListMonitors() ([]model.Display, error) {
	handles, err := monitorHandles()
	if err != nil {
		return nil, err
	}
	displays := make([]model.Display, 0, len(handles))
	for _, handle := range handles {
		info := monitorInfoEx{}
		info.Size = uint32(unsafe.Sizeof(info))
		ret, _, err := procGetMonitorInfoW.Call(handle, uintptr(unsafe.Pointer(&info)))
		if ret == 0 {
			return nil, fmt.Errorf("GetMonitorInfoW: %w", err)
		}
		displays = append(displays, model.Display{
			Name:        windows.UTF16ToString(info.Device[:]),
			Bounds:      info.Monitor.model(),
			WorkingArea: info.Work.model(),
			IsPrimary:   info.Flags&monitorInfoFPrimary != 0,
		})
	}
	return displays, nil
}

// MonitorFromRect asks the OS for the monitor nearest to bounds.
func (monitors *Monitors) MonitorFromRect(bounds model.Rect) (int, bool) {
	target := rect{
		Left:   int32(bounds.X),
		Top:    int32(bounds.Y),
		Right:  int32(bounds.X + bounds.Width),
		Bottom: int32(bounds.Y + bounds.Height),
	}
	hmonitor, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&target)), monitorDefaultNearest)
	if hmonitor == 0 {
		return 0, false
	}
	handles, err := monitorHandles()
	if err != nil {
		return 0, false
	}
	for i, handle := range handles {
		if handle == hmonitor {
			return i, true
		}
	}
	return 0, false
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
