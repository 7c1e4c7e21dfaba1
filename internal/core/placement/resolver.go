// Package placement enumerates monitors and computes where the overlay goes.
package placement

import (
	"fmt"
	"log/slog"

	"deepworktimer/internal/core/model"
)

// MonitorSource is the OS monitor enumeration primitive.
type MonitorSource interface {
	ListMonitors() ([]model.Display, error)
	// MonitorFromRect returns the index, in ListMonitors order, of the
	// monitor the OS associates with the rectangle.
	MonitorFromRect(rect model.Rect) (int, bool)
}

// Monitor is one physical display.
type Monitor struct {
	Index       int
	Name        string
	Bounds      model.Rect
	WorkingArea model.Rect
	IsPrimary   bool
	IsPreferred bool
}

func (monitor Monitor) String() string {
	markers := ""
	if monitor.IsPrimary {
		markers += " [Primary]"
	}
	if monitor.IsPreferred {
		markers += " [Preferred]"
	}
	return fmt.Sprintf("Screen %d: %dx%d%s", monitor.Index+1, monitor.Bounds.Width, monitor.Bounds.Height, markers)
}

// Resolver wraps a MonitorSource.
type Resolver struct {
	source MonitorSource
	logger *slog.Logger
}

// NewResolver creates a resolver over source.
func NewResolver(source MonitorSource, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{source: source, logger: logger}
}

// Enumerate lists the monitors currently reported by the OS and tags the
// preferred one. Any failure yields an empty list.
func (resolver *Resolver) Enumerate(preferredIndex int) []Monitor {
	displays, err := resolver.source.ListMonitors()
	if err != nil {
		resolver.logger.Debug("Monitor enumeration failed", slog.String("error", err.Error()))
		return nil
	}
	monitors := make([]Monitor, 0, len(displays))
	for i, display := range displays {
		monitors = append(monitors, Monitor{
			Index:       i,
			Name:        display.Name,
			Bounds:      display.Bounds,
			WorkingArea: display.WorkingArea,
			IsPrimary:   display.IsPrimary,
			IsPreferred: i == preferredIndex,
		})
	}
	return monitors
}

// Locate returns the monitor holding windowBounds, as decided by the OS.
func (resolver *Resolver) Locate(monitors []Monitor, windowBounds model.Rect) (Monitor, bool) {
	index, ok := resolver.source.MonitorFromRect(windowBounds)
	if !ok || index < 0 || index >= len(monitors) {
		return Monitor{}, false
	}
	return monitors[index], true
}

// MoveTo returns the top-left position that centers a window of the given
// size in the monitor's working area. The result is not clamped.
func MoveTo(monitor Monitor, size model.Size) model.Point {
	area := monitor.WorkingArea
	return model.Point{
		X: area.X + (area.Width-size.Width)/2,
		Y: area.Y + (area.Height-size.Height)/2,
	}
}

// Next returns the monitor after current, wrapping around.
func Next(monitors []Monitor, current Monitor) Monitor {
	return step(monitors, current, 1)
}

// Previous returns the monitor before current, wrapping around.
func Previous(monitors []Monitor, current Monitor) Monitor {
	return step(monitors, current, -1)
}

func step(monitors []Monitor, current Monitor, delta int) Monitor {
	count := len(monitors)
	if count <= 1 {
		return current
	}
	index := ((current.Index+delta)%count + count) % count
	return monitors[index]
}

// SelectByIndex returns monitors[index] when it exists.
func SelectByIndex(monitors []Monitor, index int) (Monitor, bool) {
	if index < 0 || index >= len(monitors) {
		return Monitor{}, false
	}
	return monitors[index], true
}

// SetPreferred returns a copy of monitors with only index marked preferred.
func SetPreferred(monitors []Monitor, index int) ([]Monitor, bool) {
	if index < 0 || index >= len(monitors) {
		return monitors, false
	}
	updated := make([]Monitor, len(monitors))
	for i, monitor := range monitors {
		monitor.IsPreferred = i == index
		updated[i] = monitor
	}
	return updated, true
}
