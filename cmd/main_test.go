package main

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("deepworktimer"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestRunIsDefaultCommand(t *testing.T) {
	cli, ctx := parse(t, "--settings", "/tmp/dwt/settings.json", "-v")
	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, "/tmp/dwt/settings.json", cli.Settings)
	assert.True(t, cli.Verbose)
}

func TestStatusAndScheduleCommands(t *testing.T) {
	cli, ctx := parse(t, "status", "--at", "09:15")
	assert.Equal(t, "status", ctx.Command())
	assert.Equal(t, "09:15", cli.Status.At)

	_, ctx = parse(t, "--schedule", "/tmp/day.yaml", "schedule")
	assert.Equal(t, "schedule", ctx.Command())

	_, ctx = parse(t, "autostart", "enable")
	assert.Equal(t, "autostart enable", ctx.Command())
}

func TestResolveAt(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	at, err := resolveAt(now, "")
	require.NoError(t, err)
	assert.Equal(t, now, at)

	at, err = resolveAt(now, "08:24:59")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 8, 24, 59, 0, time.UTC), at)

	_, err = resolveAt(now, "25:00")
	assert.Error(t, err)
}

func TestAutostartArgs(t *testing.T) {
	assert.Equal(t, []string{"run"}, autostartArgs(&CLI{}))
	assert.Equal(t,
		[]string{"run", "--settings", "/a/settings.json", "--schedule", "/a/day.yaml"},
		autostartArgs(&CLI{Settings: "/a/settings.json", ScheduleFile: "/a/day.yaml"}))
}

func TestLoadScheduleDefaultsToEmbeddedDay(t *testing.T) {
	phases, err := (&CLI{}).loadSchedule()
	require.NoError(t, err)
	assert.NotEmpty(t, phases)
	assert.Equal(t, 8*time.Hour, phases[0].Start.Duration())
}

func TestLoadScheduleMissingFile(t *testing.T) {
	_, err := (&CLI{ScheduleFile: t.TempDir() + "/missing.yaml"}).loadSchedule()
	assert.Error(t, err)
}
