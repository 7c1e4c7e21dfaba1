//go:build !windows

package overlay

import (
	"deepworktimer/internal/platform"

	"fyne.io/fyne/v2"
)

func nativeHandle(fyne.Window) platform.WindowHandle {
	return 0
}
