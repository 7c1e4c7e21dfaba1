//go:build !windows

package platform

import (
	"fmt"
	"sync"

	"deepworktimer/internal/core/model"
)

// HotkeyRegistrar has no global hotkey backend outside Windows. Every
// registration fails, which leaves the overlay on its local shortcuts.
type HotkeyRegistrar struct {
	fired     chan int
	closeOnce sync.Once
}

func NewHotkeyRegistrar() *HotkeyRegistrar {
	return &HotkeyRegistrar{fired: make(chan int)}
}

func (registrar *HotkeyRegistrar) Register(id int, chord model.Chord) error {
	return fmt.Errorf("register %s: %w", chord, ErrUnsupported)
}

func (registrar *HotkeyRegistrar) Unregister(id int) error {
	return nil
}

func (registrar *HotkeyRegistrar) Fired() <-chan int {
	return registrar.fired
}

func (registrar *HotkeyRegistrar) Close() error {
	registrar.closeOnce.Do(func() {
		close(registrar.fired)
	})
	return nil
}
