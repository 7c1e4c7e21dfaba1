package placement

import (
	"log/slog"
	"time"

	"deepworktimer/internal/core/command"
	"deepworktimer/internal/core/model"
)

// Window is the overlay window as seen by placement.
type Window interface {
	Bounds() (model.Rect, error)
	Move(point model.Point) error
}

// SettingsStore is the single writer of the persisted settings.
type SettingsStore interface {
	Snapshot() model.Settings
	Update(mutate func(*model.Settings)) error
}

// Notice is the in-memory event produced by a successful command.
type Notice struct {
	Message  string
	Duration time.Duration
}

// Controller executes placement commands.
type Controller struct {
	resolver *Resolver
	window   Window
	store    SettingsStore
	notify   func(Notice)
	logger   *slog.Logger
}

// NewController wires a controller. notify may be nil.
func NewController(resolver *Resolver, window Window, store SettingsStore, notify func(Notice), logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if notify == nil {
		notify = func(Notice) {}
	}
	return &Controller{
		resolver: resolver,
		window:   window,
		store:    store,
		notify:   notify,
		logger:   logger,
	}
}

// Monitors enumerates monitors with the persisted preference applied.
func (controller *Controller) Monitors() []Monitor {
	return controller.resolver.Enumerate(controller.store.Snapshot().PreferredScreenIndex)
}

// Execute runs one command. It reports whether anything changed.
func (controller *Controller) Execute(cmd command.Command) bool {
	settings := controller.store.Snapshot()
	monitors := controller.resolver.Enumerate(settings.PreferredScreenIndex)
	if len(monitors) == 0 {
		controller.logger.Debug("No monitors available", slog.String("command", cmd.String()))
		return false
	}

	bounds, err := controller.window.Bounds()
	if err != nil {
		controller.logger.Debug("Window bounds unavailable",
			slog.String("command", cmd.String()),
			slog.String("error", err.Error()))
		return false
	}

	switch cmd.Kind {
	case command.KindSelectScreen:
		target, ok := SelectByIndex(monitors, cmd.Index)
		if !ok {
			return false
		}
		return controller.place(target, bounds, target.String(), settings)
	case command.KindNextScreen, command.KindPreviousScreen:
		if len(monitors) <= 1 {
			return false
		}
		current, ok := controller.resolver.Locate(monitors, bounds)
		if !ok {
			return false
		}
		target := Next(monitors, current)
		if cmd.Kind == command.KindPreviousScreen {
			target = Previous(monitors, current)
		}
		return controller.place(target, bounds, target.String(), settings)
	case command.KindCenterCurrent:
		current, ok := controller.resolver.Locate(monitors, bounds)
		if !ok {
			return false
		}
		return controller.place(current, bounds, "Centered on "+current.String(), settings)
	case command.KindSetPreferred:
		current, ok := controller.resolver.Locate(monitors, bounds)
		if !ok {
			return false
		}
		return controller.setPreferred(monitors, current.Index, settings)
	default:
		return false
	}
}

func (controller *Controller) place(target Monitor, bounds model.Rect, message string, settings model.Settings) bool {
	point := MoveTo(target, bounds.Size())
	if err := controller.window.Move(point); err != nil {
		controller.logger.Warn("Failed to move window",
			slog.String("monitor", target.String()),
			slog.String("error", err.Error()))
		return false
	}

	if err := controller.store.Update(func(s *model.Settings) {
		s.WindowLeft = float64(point.X)
		s.WindowTop = float64(point.Y)
	}); err != nil {
		controller.logger.Warn("Failed to persist window position", slog.String("error", err.Error()))
	}

	controller.logger.Info("Moved overlay",
		slog.String("monitor", target.String()),
		slog.Int("left", point.X),
		slog.Int("top", point.Y))
	controller.notify(Notice{Message: message, Duration: settings.NotificationTimeout()})
	return true
}

func (controller *Controller) setPreferred(monitors []Monitor, index int, settings model.Settings) bool {
	updated, ok := SetPreferred(monitors, index)
	if !ok {
		return false
	}
	if err := controller.store.Update(func(s *model.Settings) {
		s.PreferredScreenIndex = index
	}); err != nil {
		controller.logger.Warn("Failed to persist preferred screen", slog.String("error", err.Error()))
	}

	preferred := updated[index]
	controller.logger.Info("Preferred screen changed", slog.String("monitor", preferred.String()))
	controller.notify(Notice{Message: "Set " + preferred.String() + " as Preferred", Duration: settings.NotificationTimeout()})
	return true
}
