package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"deepworktimer/internal/core/model"
	"deepworktimer/internal/core/schedule"
	"deepworktimer/internal/platform"
	"deepworktimer/internal/ui/terminal"
)

// StatusCmd prints the resolved phase.
type StatusCmd struct {
	At string `help:"Resolve at this time of day today (HH:MM or HH:MM:SS)" placeholder:"HH:MM"`
}

func (cmd *StatusCmd) Run(cli *CLI) error {
	phases, err := cli.loadSchedule()
	if err != nil {
		return err
	}
	at, err := resolveAt(time.Now(), cmd.At)
	if err != nil {
		return err
	}
	fmt.Println(terminal.New(os.Stdout).Status(schedule.Resolve(phases, at)))
	return nil
}

// resolveAt returns now, or today's date at the given time of day.
func resolveAt(now time.Time, value string) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	timeOfDay, err := model.ParseTimeOfDay(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Add(timeOfDay.Duration()), nil
}

// PhasesCmd lists the schedule.
type PhasesCmd struct{}

func (cmd *PhasesCmd) Run(cli *CLI) error {
	phases, err := cli.loadSchedule()
	if err != nil {
		return err
	}
	current := schedule.Resolve(phases, time.Now()).CurrentIndex
	fmt.Println(terminal.New(os.Stdout).Schedule(phases, current))
	return nil
}

// AutostartCmd groups the login autostart subcommands.
type AutostartCmd struct {
	Enable  AutostartEnableCmd  `cmd:"" help:"Start the overlay at login"`
	Disable AutostartDisableCmd `cmd:"" help:"Stop starting the overlay at login"`
}

type AutostartEnableCmd struct{}

func (cmd *AutostartEnableCmd) Run(cli *CLI) error {
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if err := platform.NewService().EnableAutostart(appName, execPath, autostartArgs(cli)...); err != nil {
		return err
	}
	slog.Info("Autostart enabled", slog.String("exec", execPath))
	return nil
}

// autostartArgs reproduces the path flags of the current invocation.
func autostartArgs(cli *CLI) []string {
	args := []string{"run"}
	if cli.Settings != "" {
		args = append(args, "--settings", cli.Settings)
	}
	if cli.ScheduleFile != "" {
		args = append(args, "--schedule", cli.ScheduleFile)
	}
	return args
}

type AutostartDisableCmd struct{}

func (cmd *AutostartDisableCmd) Run(cli *CLI) error {
	if err := platform.NewService().DisableAutostart(appName); err != nil {
		return err
	}
	slog.Info("Autostart disabled")
	return nil
}
