package command

import "deepworktimer/internal/core/model"

// Keyboard is the local fallback path. It resolves chords typed while the
// overlay has focus and queues them on the same channel as global hotkeys.
type Keyboard struct {
	bindings []Binding
	out      chan<- Command
}

// NewKeyboard creates a local dispatcher over bindings.
func NewKeyboard(bindings []Binding, out chan<- Command) *Keyboard {
	return &Keyboard{bindings: append([]Binding(nil), bindings...), out: out}
}

// Bindings returns the chords the keyboard reacts to.
func (keyboard *Keyboard) Bindings() []Binding {
	return append([]Binding(nil), keyboard.bindings...)
}

// Dispatch queues the command bound to chord. It reports false for unbound
// chords and when the queue is full.
func (keyboard *Keyboard) Dispatch(chord model.Chord) bool {
	command, ok := Lookup(keyboard.bindings, chord)
	if !ok {
		return false
	}
	select {
	case keyboard.out <- command:
		return true
	default:
		return false
	}
}
