package storage

import (
	"log/slog"
	"sync"

	"deepworktimer/internal/core/model"
)

// Store owns the in-memory settings and is their only writer. Readers get
// value snapshots.
type Store struct {
	mu       sync.Mutex
	path     string
	settings model.Settings
	dirty    bool
	save     func(string, model.Settings) error
	logger   *slog.Logger
}

// OpenStore loads settings from path. Load failures are logged and the
// defaults are used instead.
func OpenStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	settings, err := LoadSettings(path)
	if err != nil {
		logger.Warn("Using default settings", slog.String("path", path), slog.String("error", err.Error()))
	} else {
		logger.Debug("Loaded settings",
			slog.String("path", path),
			slog.Int("preferred_screen", settings.PreferredScreenIndex+1))
	}
	return &Store{
		path:     path,
		settings: settings,
		save:     SaveSettings,
		logger:   logger,
	}
}

// Path returns the backing file path.
func (store *Store) Path() string {
	return store.path
}

// Snapshot returns a copy of the current settings.
func (store *Store) Snapshot() model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.settings
}

// Update applies mutate and writes the result. On a failed write the change
// stays in memory and is retried by the next Flush.
func (store *Store) Update(mutate func(*model.Settings)) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	mutate(&store.settings)
	store.settings = store.settings.Normalize()
	store.dirty = true
	return store.flushLocked()
}

// SetPosition records a window position without writing it. Position
// changes are flushed by the next Update or Flush.
func (store *Store) SetPosition(left, top float64) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.settings.WindowLeft == left && store.settings.WindowTop == top {
		return
	}
	store.settings.WindowLeft = left
	store.settings.WindowTop = top
	store.dirty = true
}

// Dirty reports whether in-memory settings differ from what was last written.
func (store *Store) Dirty() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.dirty
}

// Flush writes pending changes, if any.
func (store *Store) Flush() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if !store.dirty {
		return nil
	}
	return store.flushLocked()
}

func (store *Store) flushLocked() error {
	if err := store.save(store.path, store.settings); err != nil {
		store.logger.Warn("Failed to save settings", slog.String("path", store.path), slog.String("error", err.Error()))
		return err
	}
	store.dirty = false
	store.logger.Debug("Saved settings", slog.String("path", store.path))
	return nil
}
