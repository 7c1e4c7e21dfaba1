// Package command maps keyboard chords to placement commands and bridges the
// global hotkey and local keyboard delivery paths onto a single channel.
package command

import (
	"fmt"

	"deepworktimer/internal/core/model"
)

// Kind identifies a placement action.
type Kind int

const (
	KindSelectScreen Kind = iota + 1
	KindNextScreen
	KindPreviousScreen
	KindCenterCurrent
	KindSetPreferred
)

// Command is a discrete placement request.
type Command struct {
	Kind Kind
	// Index is the zero-based monitor index for KindSelectScreen.
	Index int
}

func (command Command) String() string {
	switch command.Kind {
	case KindSelectScreen:
		return fmt.Sprintf("Switch to Screen %d", command.Index+1)
	case KindNextScreen:
		return "Next Screen"
	case KindPreviousScreen:
		return "Previous Screen"
	case KindCenterCurrent:
		return "Center on Current Screen"
	case KindSetPreferred:
		return "Set Preferred Screen"
	default:
		return "Unknown"
	}
}

// Binding ties a chord to the command it triggers.
type Binding struct {
	Chord   model.Chord
	Command Command
}

// MaxScreenChords is the number of Ctrl+Alt+digit bindings.
const MaxScreenChords = 9

// DefaultBindings returns the fixed chord table.
func DefaultBindings() []Binding {
	const mods = model.ModCtrl | model.ModAlt

	bindings := make([]Binding, 0, MaxScreenChords+4)
	for i := 1; i <= MaxScreenChords; i++ {
		bindings = append(bindings, Binding{
			Chord:   model.Chord{Modifiers: mods, Key: model.Key('0' + i)},
			Command: Command{Kind: KindSelectScreen, Index: i - 1},
		})
	}
	return append(bindings,
		Binding{Chord: model.Chord{Modifiers: mods, Key: 'M'}, Command: Command{Kind: KindNextScreen}},
		Binding{Chord: model.Chord{Modifiers: mods, Key: 'N'}, Command: Command{Kind: KindPreviousScreen}},
		Binding{Chord: model.Chord{Modifiers: mods, Key: 'C'}, Command: Command{Kind: KindCenterCurrent}},
		Binding{Chord: model.Chord{Modifiers: mods, Key: 'P'}, Command: Command{Kind: KindSetPreferred}},
	)
}

// Lookup finds the command bound to chord.
func Lookup(bindings []Binding, chord model.Chord) (Command, bool) {
	for _, binding := range bindings {
		if binding.Chord == chord {
			return binding.Command, true
		}
	}
	return Command{}, false
}
