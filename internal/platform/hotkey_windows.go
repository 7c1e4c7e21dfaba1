//go:build windows

package platform

import (
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"deepworktimer/internal/core/model"
)

const (
	wmHotkey         = 0x0312
	pmRemove         = 0x0001
	hotkeyPollPeriod = 20 * time.Millisecond
)

var (
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
)

type point struct {
	X, Y int32
}

type message struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
	Private uint32
}

// HotkeyRegistrar owns an OS-locked thread. RegisterHotKey posts WM_HOTKEY
// to the registering thread's queue, so registration and the message pump
// both run there.
type HotkeyRegistrar struct {
	requests  chan func()
	fired     chan int
	done      chan struct{}
	closeOnce sync.Once
	ids       map[int]struct{}
}

// NewHotkeyRegistrar starts the message loop thread.
func NewHotkeyRegistrar() *HotkeyRegistrar {
	registrar := &HotkeyRegistrar{
		requests: make(chan func()),
		fired:    make(chan int, 16),
		done:     make(chan struct{}),
		ids:      make(map[int]struct{}),
	}
	go registrar.loop()
	return registrar
}

// Register binds chord to id for the whole session.
func (registrar *HotkeyRegistrar) Register(id int, chord model.Chord) error {
	key, ok := virtualKey(chord.Key)
	if !ok {
		return fmt.Errorf("register %s: %w", chord, ErrUnsupported)
	}
	return registrar.do(func() error {
		ret, _, err := procRegisterHotKey.Call(0, uintptr(id), uintptr(nativeModifiers(chord.Modifiers)), uintptr(key))
		if ret == 0 {
			return fmt.Errorf("RegisterHotKey %s: %w", chord, err)
		}
		registrar.ids[id] = struct{}{}
		return nil
	})
}

// Unregister releases id.
func (registrar *HotkeyRegistrar) Unregister(id int) error {
	return registrar.do(func() error {
		if _, ok := registrar.ids[id]; !ok {
			return nil
		}
		delete(registrar.ids, id)
		ret, _, err := procUnregisterHotKey.Call(0, uintptr(id))
		if ret == 0 {
			return fmt.Errorf("UnregisterHotKey %d: %w", id, err)
		}
		return nil
	})
}

// Fired delivers the id of every WM_HOTKEY. It is closed when the loop exits.
func (registrar *HotkeyRegistrar) Fired() <-chan int {
	return registrar.fired
}

// Close stops the loop, releasing anything still registered.
func (registrar *HotkeyRegistrar) Close() error {
	registrar.closeOnce.Do(func() {
		close(registrar.done)
	})
	return nil
}

func (registrar *HotkeyRegistrar) do(request func() error) error {
	result := make(chan error, 1)
	select {
	case registrar.requests <- func() { result <- request() }:
		return <-result
	case <-registrar.done:
		return ErrRegistrarClosed
	}
}

func (registrar *HotkeyRegistrar) loop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(registrar.fired)
	defer func() {
		for id := range registrar.ids {
			procUnregisterHotKey.Call(0, uintptr(id))
		}
	}()

	var msg message
	for {
		select {
		case <-registrar.done:
			return
		case request := <-registrar.requests:
			request()
			continue
		default:
		}

		ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, wmHotkey, wmHotkey, pmRemove)
		if ret != 0 {
			if msg.Message == wmHotkey {
				select {
				case registrar.fired <- int(msg.WParam):
				default:
				}
			}
			continue
		}
		time.Sleep(hotkeyPollPeriod)
	}
}
