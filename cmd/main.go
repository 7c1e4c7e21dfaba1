package main

import (
	"fmt"
	"log/slog"
	"os"

	"deepworktimer/internal/core/model"
	"deepworktimer/internal/platform"
	"deepworktimer/internal/storage"
	"deepworktimer/resources"

	"github.com/alecthomas/kong"
)

const (
	appName = "DeepWorkTimer"
	appID   = "com.deepworktimer.app"
)

// CLI definition & global flags.
type CLI struct {
	Settings     string `help:"Settings file path (default: <config dir>/DeepWorkTimer/settings.json)" type:"path"`
	ScheduleFile string `name:"schedule" help:"Schedule YAML file (default: the embedded work day)" type:"path"`
	Verbose      bool   `short:"v" help:"Enable verbose logging"`

	Run       RunCmd       `cmd:"" default:"1" help:"Show the countdown overlay"`
	Status    StatusCmd    `cmd:"" help:"Print the phase active now or at --at"`
	Phases    PhasesCmd    `cmd:"" name:"schedule" help:"List every phase of the schedule"`
	Autostart AutostartCmd `cmd:"" help:"Manage starting the overlay at login"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadSchedule reads the schedule file, or the embedded day when none is set.
func (c *CLI) loadSchedule() (model.Schedule, error) {
	if c.ScheduleFile == "" {
		return resources.Schedule(resources.DefaultScheduleFile)
	}
	phases, err := storage.LoadSchedule(c.ScheduleFile)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	return phases, nil
}

func (c *CLI) settingsPath() (string, error) {
	if c.Settings != "" {
		return c.Settings, nil
	}
	return storage.SettingsPath(platform.NewService(), appName)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("deepworktimer"),
		kong.Description("Countdown overlay for a fixed daily schedule of work and break phases."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
