package command

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"deepworktimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	mu         sync.Mutex
	reject     map[model.Key]bool
	registered map[int]model.Chord
	fired      chan int
	closed     bool
}

func newFakeRegistrar(reject ...model.Key) *fakeRegistrar {
	registrar := &fakeRegistrar{
		reject:     make(map[model.Key]bool),
		registered: make(map[int]model.Chord),
		fired:      make(chan int, 8),
	}
	for _, key := range reject {
		registrar.reject[key] = true
	}
	return registrar
}

func (registrar *fakeRegistrar) Register(id int, chord model.Chord) error {
	registrar.mu.Lock()
	defer registrar.mu.Unlock()
	if registrar.reject[chord.Key] {
		return errors.New("hotkey already registered")
	}
	registrar.registered[id] = chord
	return nil
}

func (registrar *fakeRegistrar) Unregister(id int) error {
	registrar.mu.Lock()
	defer registrar.mu.Unlock()
	delete(registrar.registered, id)
	return nil
}

func (registrar *fakeRegistrar) Fired() <-chan int { return registrar.fired }

func (registrar *fakeRegistrar) Close() error {
	registrar.mu.Lock()
	defer registrar.mu.Unlock()
	registrar.closed = true
	return nil
}

func (registrar *fakeRegistrar) idFor(key model.Key) int {
	registrar.mu.Lock()
	defer registrar.mu.Unlock()
	for id, chord := range registrar.registered {
		if chord.Key == key {
			return id
		}
	}
	return -1
}

func TestDefaultBindingsTable(t *testing.T) {
	bindings := DefaultBindings()
	require.Len(t, bindings, 13)

	mods := model.ModCtrl | model.ModAlt
	cases := []struct {
		key  model.Key
		want Command
	}{
		{'1', Command{Kind: KindSelectScreen, Index: 0}},
		{'9', Command{Kind: KindSelectScreen, Index: 8}},
		{'M', Command{Kind: KindNextScreen}},
		{'N', Command{Kind: KindPreviousScreen}},
		{'C', Command{Kind: KindCenterCurrent}},
		{'P', Command{Kind: KindSetPreferred}},
	}
	for _, tc := range cases {
		got, ok := Lookup(bindings, model.Chord{Modifiers: mods, Key: tc.key})
		require.True(t, ok, string(rune(tc.key)))
		assert.Equal(t, tc.want, got)
	}

	_, ok := Lookup(bindings, model.Chord{Modifiers: model.ModCtrl, Key: 'M'})
	assert.False(t, ok, "modifiers must match exactly")
	_, ok = Lookup(bindings, model.Chord{Modifiers: mods, Key: '0'})
	assert.False(t, ok)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Switch to Screen 3", Command{Kind: KindSelectScreen, Index: 2}.String())
	assert.Equal(t, "Set Preferred Screen", Command{Kind: KindSetPreferred}.String())
	assert.Equal(t, "Unknown", Command{}.String())
}

func TestRegisterAllSkipsMissingMonitors(t *testing.T) {
	registrar := newFakeRegistrar()
	hotkeys := NewHotkeys(registrar, nil)

	count, err := hotkeys.RegisterAll(DefaultBindings(), 2)
	require.NoError(t, err)
	assert.Equal(t, 6, count, "two screen chords plus four navigation chords")
	assert.Equal(t, -1, registrar.idFor('3'))
	assert.GreaterOrEqual(t, registrar.idFor('1'), firstHotkeyID)
}

func TestRegisterAllIsolatesFailures(t *testing.T) {
	registrar := newFakeRegistrar('M', '2')
	hotkeys := NewHotkeys(registrar, nil)

	count, err := hotkeys.RegisterAll(DefaultBindings(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistration)
	assert.Contains(t, err.Error(), "Ctrl+Alt+M")
	assert.Equal(t, 5, count)
	assert.Equal(t, 5, hotkeys.Registered())

	_, ok := hotkeys.Resolve(registrar.idFor('N'))
	assert.True(t, ok, "chords after a failure are still registered")
}

func TestHotkeysRunForwardsFiredCommands(t *testing.T) {
	registrar := newFakeRegistrar()
	hotkeys := NewHotkeys(registrar, nil)
	_, err := hotkeys.RegisterAll(DefaultBindings(), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := make(chan Command, 2)
	done := make(chan struct{})
	go func() {
		hotkeys.Run(ctx, out)
		close(done)
	}()

	registrar.fired <- 42
	registrar.fired <- registrar.idFor('C')

	select {
	case got := <-out:
		assert.Equal(t, Command{Kind: KindCenterCurrent}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command")
	}

	cancel()
	<-done
}

func TestHotkeysCloseUnregistersEverything(t *testing.T) {
	registrar := newFakeRegistrar()
	hotkeys := NewHotkeys(registrar, nil)
	_, err := hotkeys.RegisterAll(DefaultBindings(), 9)
	require.NoError(t, err)

	require.NoError(t, hotkeys.Close())
	assert.Empty(t, registrar.registered)
	assert.True(t, registrar.closed)
	assert.Equal(t, 0, hotkeys.Registered())
}

func TestKeyboardAndHotkeysProduceIdenticalCommands(t *testing.T) {
	bindings := DefaultBindings()
	registrar := newFakeRegistrar()
	hotkeys := NewHotkeys(registrar, nil)
	_, err := hotkeys.RegisterAll(bindings, MaxScreenChords)
	require.NoError(t, err)

	out := make(chan Command, 1)
	keyboard := NewKeyboard(bindings, out)

	for _, binding := range bindings {
		require.True(t, keyboard.Dispatch(binding.Chord))
		local := <-out

		global, ok := hotkeys.Resolve(registrar.idFor(binding.Chord.Key))
		require.True(t, ok)
		assert.Equal(t, global, local, binding.Chord.String())
	}
}

func TestKeyboardDispatchUnboundAndFull(t *testing.T) {
	out := make(chan Command, 1)
	keyboard := NewKeyboard(DefaultBindings(), out)

	assert.False(t, keyboard.Dispatch(model.Chord{Key: 'Z'}))

	chord := model.Chord{Modifiers: model.ModCtrl | model.ModAlt, Key: 'M'}
	assert.True(t, keyboard.Dispatch(chord))
	assert.False(t, keyboard.Dispatch(chord), "queue is full")
}
