package platform

import (
	"errors"

	"deepworktimer/internal/core/model"
)

// ErrRegistrarClosed is returned by calls made after Close.
var ErrRegistrarClosed = errors.New("hotkey registrar closed")

const (
	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000
)

// nativeModifiers maps a chord's modifiers to RegisterHotKey flags.
func nativeModifiers(modifiers model.Modifier) uint32 {
	var flags uint32 = modNoRepeat
	if modifiers&model.ModCtrl != 0 {
		flags |= modControl
	}
	if modifiers&model.ModAlt != 0 {
		flags |= modAlt
	}
	if modifiers&model.ModShift != 0 {
		flags |= modShift
	}
	if modifiers&model.ModSuper != 0 {
		flags |= modWin
	}
	return flags
}

// virtualKey maps a digit or letter key to its virtual-key code, which for
// these keys is the upper-case ASCII value.
func virtualKey(key model.Key) (uint32, bool) {
	switch {
	case key >= '0' && key <= '9':
		return uint32(key), true
	case key >= 'A' && key <= 'Z':
		return uint32(key), true
	case key >= 'a' && key <= 'z':
		return uint32(key - 'a' + 'A'), true
	default:
		return 0, false
	}
}
