package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"deepworktimer/internal/core/model"
)

// ErrRegistration is wrapped by every per-chord registration failure.
var ErrRegistration = errors.New("hotkey registration failed")

// firstHotkeyID is the id assigned to the first registered chord.
const firstHotkeyID = 1000

// Registrar is the OS global-hotkey primitive.
type Registrar interface {
	Register(id int, chord model.Chord) error
	Unregister(id int) error
	Fired() <-chan int
	Close() error
}

// Hotkeys registers the chord table with the OS and translates fired
// registration ids back into commands.
type Hotkeys struct {
	mu        sync.Mutex
	registrar Registrar
	logger    *slog.Logger
	nextID    int
	commands  map[int]Command
}

// NewHotkeys creates a manager over registrar.
func NewHotkeys(registrar Registrar, logger *slog.Logger) *Hotkeys {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hotkeys{
		registrar: registrar,
		logger:    logger,
		nextID:    firstHotkeyID,
		commands:  make(map[int]Command),
	}
}

// RegisterAll registers every binding independently. Screen-selection chords
// are only registered for monitors that exist. It returns the number of
// chords registered and the joined per-chord failures.
func (hotkeys *Hotkeys) RegisterAll(bindings []Binding, monitorCount int) (int, error) {
	hotkeys.mu.Lock()
	defer hotkeys.mu.Unlock()

	var errs []error
	registered := 0
	for _, binding := range bindings {
		if binding.Command.Kind == KindSelectScreen && binding.Command.Index >= monitorCount {
			continue
		}
		id := hotkeys.nextID
		hotkeys.nextID++
		if err := hotkeys.registrar.Register(id, binding.Chord); err != nil {
			hotkeys.logger.Warn("Failed to register hotkey",
				slog.String("chord", binding.Chord.String()),
				slog.String("command", binding.Command.String()),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrRegistration, binding.Chord, err))
			continue
		}
		hotkeys.commands[id] = binding.Command
		registered++
		hotkeys.logger.Debug("Registered hotkey",
			slog.String("chord", binding.Chord.String()),
			slog.String("command", binding.Command.String()),
			slog.Int("id", id))
	}
	return registered, errors.Join(errs...)
}

// Registered returns the number of active registrations.
func (hotkeys *Hotkeys) Registered() int {
	hotkeys.mu.Lock()
	defer hotkeys.mu.Unlock()
	return len(hotkeys.commands)
}

// Resolve maps a fired registration id to its command.
func (hotkeys *Hotkeys) Resolve(id int) (Command, bool) {
	hotkeys.mu.Lock()
	defer hotkeys.mu.Unlock()
	command, ok := hotkeys.commands[id]
	return command, ok
}

// Run forwards fired hotkeys to out until ctx is done or the registrar
// stops delivering. Unknown ids are ignored.
func (hotkeys *Hotkeys) Run(ctx context.Context, out chan<- Command) {
	fired := hotkeys.registrar.Fired()
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-fired:
			if !ok {
				return
			}
			command, known := hotkeys.Resolve(id)
			if !known {
				continue
			}
			select {
			case out <- command:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Close unregisters every chord and releases the registrar.
func (hotkeys *Hotkeys) Close() error {
	hotkeys.mu.Lock()
	ids := make([]int, 0, len(hotkeys.commands))
	for id := range hotkeys.commands {
		ids = append(ids, id)
	}
	hotkeys.commands = make(map[int]Command)
	hotkeys.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := hotkeys.registrar.Unregister(id); err != nil {
			errs = append(errs, fmt.Errorf("unregister hotkey %d: %w", id, err))
		}
	}
	if err := hotkeys.registrar.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close hotkey registrar: %w", err))
	}
	return errors.Join(errs...)
}
