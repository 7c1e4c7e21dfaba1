package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"deepworktimer/internal/core/command"
	"deepworktimer/internal/core/model"
	"deepworktimer/internal/core/placement"
	"deepworktimer/internal/core/schedule"
	"deepworktimer/internal/platform"
	"deepworktimer/internal/storage"
	"deepworktimer/internal/ui/overlay"
	"deepworktimer/internal/ui/preferences"
	"deepworktimer/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	commandQueueSize = 8
	updateBuffer     = 4
)

// RunCmd shows the overlay until the user quits.
type RunCmd struct{}

func (cmd *RunCmd) Run(cli *CLI) error {
	logger := slog.Default()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	phases, err := cli.loadSchedule()
	if err != nil {
		return err
	}
	path, err := cli.settingsPath()
	if err != nil {
		return err
	}
	store := storage.OpenStore(path, logger)
	settings := store.Snapshot()
	logger.Info("Starting overlay",
		slog.String("settings", store.Path()),
		slog.Int("phases", len(phases)))

	fyneApp := app.NewWithID(appID)
	overlayWindow := overlay.New(fyneApp, overlay.Config{Opacity: settings.Opacity, ClickThrough: true},
		platform.NewWindowControl(), logger)

	commands := make(chan command.Command, commandQueueSize)
	enqueue := func(cmd command.Command) {
		select {
		case commands <- cmd:
		default:
			logger.Debug("Command queue full", slog.String("command", cmd.String()))
		}
	}

	resolver := placement.NewResolver(platform.NewMonitorSource(), logger)
	controller := placement.NewController(resolver, overlayWindow, store, overlayWindow.ShowNotice, logger)

	bindings := command.DefaultBindings()
	hotkeys := command.NewHotkeys(platform.NewHotkeyRegistrar(), logger)
	registered := 0
	if settings.GlobalHotkeysEnabled {
		registered, err = hotkeys.RegisterAll(bindings, len(controller.Monitors()))
		if err != nil {
			logger.Warn("Some global hotkeys are unavailable",
				slog.Int("registered", registered),
				slog.String("error", err.Error()))
		}
	}
	if registered == 0 {
		overlayWindow.InstallShortcuts(command.NewKeyboard(bindings, commands))
		logger.Info("Using local keyboard shortcuts")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hotkeys.Run(ctx, commands)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cmd := <-commands:
				fyne.Do(func() {
					controller.Execute(cmd)
				})
			}
		}
	}()

	prefsWindow := preferences.New(fyneApp, store, func(updated model.Settings) {
		overlayWindow.UpdateConfig(overlay.Config{
			Opacity:      updated.Opacity,
			ClickThrough: overlayWindow.IsClickThrough(),
		})
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnPreferences:    prefsWindow.Show,
			OnNextScreen:     func() { enqueue(command.Command{Kind: command.KindNextScreen}) },
			OnPreviousScreen: func() { enqueue(command.Command{Kind: command.KindPreviousScreen}) },
			OnCenter:         func() { enqueue(command.Command{Kind: command.KindCenterCurrent}) },
			OnSetPreferred:   func() { enqueue(command.Command{Kind: command.KindSetPreferred}) },
			OnToggleClickThrough: func() {
				enabled, err := overlayWindow.ToggleClickThrough()
				if err != nil {
					logger.Warn("Failed to toggle click-through", slog.String("error", err.Error()))
					return
				}
				trayManager.SetClickThrough(enabled)
			},
			OnQuit: fyneApp.Quit,
		})
		trayManager.SetClickThrough(true)
	} else {
		logger.Info("System tray unsupported on this platform")
	}

	tracker := schedule.NewTracker(phases, schedule.Config{TickInterval: time.Second})
	updates := tracker.Subscribe(updateBuffer)
	go func() {
		for update := range updates {
			fyne.Do(func() {
				overlayWindow.Render(update)
				if trayManager != nil {
					trayManager.SetStatus(statusText(update.Snapshot))
				}
				if point, ok := overlayWindow.Position(); ok {
					store.SetPosition(float64(point.X), float64(point.Y))
				}
				if update.CurrentChanged {
					logger.Info("Phase changed", slog.String("phase", update.Snapshot.CurrentName()))
				}
			})
		}
	}()

	lifecycle := fyneApp.Lifecycle()
	lifecycle.SetOnStarted(func() {
		overlayWindow.RestorePosition(settings)
		overlayWindow.ApplyNative()
		tracker.Start()
	})
	lifecycle.SetOnEnteredForeground(overlayWindow.ApplyNative)
	lifecycle.SetOnExitedForeground(overlayWindow.ApplyNative)

	overlayWindow.FyneWindow().SetOnClosed(fyneApp.Quit)
	overlayWindow.Show()
	fyneApp.Run()

	tracker.Stop()
	cancel()
	if err := hotkeys.Close(); err != nil {
		logger.Warn("Failed to release hotkeys", slog.String("error", err.Error()))
	}
	// Flush logs its own failure.
	_ = store.Flush()
	return nil
}

func statusText(snapshot schedule.Snapshot) string {
	if snapshot.Current == nil {
		return snapshot.CurrentName()
	}
	return fmt.Sprintf("%s, %s left", snapshot.CurrentName(), snapshot.RemainingText())
}
