//go:build windows

package overlay

import (
	"deepworktimer/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// nativeHandle returns the HWND behind window, or zero before the native
// window exists.
func nativeHandle(window fyne.Window) platform.WindowHandle {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return 0
	}

	var handle platform.WindowHandle
	nativeWindow.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			handle = platform.WindowHandle(value.HWND)
		case *driver.WindowsWindowContext:
			handle = platform.WindowHandle(value.HWND)
		}
	})
	return handle
}
