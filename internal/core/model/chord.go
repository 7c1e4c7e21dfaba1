package model

import "strings"

// Modifier is a bitmask of keyboard modifiers.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// Key is an ASCII key, a digit '0'-'9' or an upper-case letter 'A'-'Z'.
type Key rune

// Chord is a modifier+key combination.
type Chord struct {
	Modifiers Modifier
	Key       Key
}

func (chord Chord) String() string {
	var parts []string
	if chord.Modifiers&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if chord.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if chord.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if chord.Modifiers&ModSuper != 0 {
		parts = append(parts, "Super")
	}
	parts = append(parts, string(rune(chord.Key)))
	return strings.Join(parts, "+")
}
