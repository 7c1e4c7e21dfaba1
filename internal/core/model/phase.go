package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Category classifies a phase for display.
type Category string

const (
	CategoryFocus      Category = "focus"
	CategoryShortBreak Category = "short_break"
	CategoryLongBreak  Category = "long_break"
	CategoryLunch      Category = "lunch"
	CategoryLightTask  Category = "light_task"
)

// NoPhaseColor is used when no phase is active.
const NoPhaseColor = "#808080"

// Color returns the display color of the category as a hex string.
func (category Category) Color() string {
	switch category {
	case CategoryFocus:
		return "#1E90FF"
	case CategoryShortBreak:
		return "#FFD700"
	case CategoryLongBreak:
		return "#FFA500"
	case CategoryLunch:
		return "#FF4500"
	case CategoryLightTask:
		return "#D3D3D3"
	default:
		return NoPhaseColor
	}
}

// Valid reports whether the category is one of the known values.
func (category Category) Valid() bool {
	switch category {
	case CategoryFocus, CategoryShortBreak, CategoryLongBreak, CategoryLunch, CategoryLightTask:
		return true
	}
	return false
}

// TimeOfDay is an offset from local midnight.
type TimeOfDay time.Duration

// Clock builds a TimeOfDay from hours, minutes and seconds.
func Clock(hours, minutes, seconds int) TimeOfDay {
	return TimeOfDay(time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second)
}

// TimeOfDayOf returns the time-of-day component of t in its own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	hour, minute, second := t.Clock()
	return Clock(hour, minute, second) + TimeOfDay(t.Nanosecond())
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parse time of day %q: want HH:MM or HH:MM:SS", value)
	}
	limits := []int{23, 59, 59}
	fields := make([]int, 3)
	for i, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil || parsed < 0 || parsed > limits[i] {
			return 0, fmt.Errorf("parse time of day %q: invalid field %q", value, part)
		}
		fields[i] = parsed
	}
	return Clock(fields[0], fields[1], fields[2]), nil
}

// Duration returns the offset from midnight.
func (value TimeOfDay) Duration() time.Duration {
	return time.Duration(value)
}

// String formats the value as HH:MM.
func (value TimeOfDay) String() string {
	total := int(time.Duration(value) / time.Minute)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Phase is one scheduled interval of the day. The interval is half-open: [Start, End).
type Phase struct {
	Start    TimeOfDay
	End      TimeOfDay
	Name     string
	Category Category
}

// Duration returns End - Start.
func (phase Phase) Duration() time.Duration {
	return time.Duration(phase.End - phase.Start)
}

// IsActiveAt reports whether at falls inside [Start, End).
func (phase Phase) IsActiveAt(at TimeOfDay) bool {
	return at >= phase.Start && at < phase.End
}

// Remaining returns the time left in the phase at the given instant.
// A phase that has not started yet reports its full duration.
func (phase Phase) Remaining(at TimeOfDay) time.Duration {
	if at >= phase.End {
		return 0
	}
	if at < phase.Start {
		return phase.Duration()
	}
	return time.Duration(phase.End - at)
}

// Schedule is the ordered list of phases for a day.
type Schedule []Phase

// ErrInvalidSchedule is wrapped by every Validate failure.
var ErrInvalidSchedule = errors.New("invalid schedule")

// Validate checks ordering, interval bounds and overlaps.
func (schedule Schedule) Validate() error {
	for i, phase := range schedule {
		if phase.Start >= phase.End {
			return fmt.Errorf("%w: phase %d %q starts at %s but ends at %s", ErrInvalidSchedule, i, phase.Name, phase.Start, phase.End)
		}
		if !phase.Category.Valid() {
			return fmt.Errorf("%w: phase %d %q has unknown category %q", ErrInvalidSchedule, i, phase.Name, phase.Category)
		}
		if i == 0 {
			continue
		}
		previous := schedule[i-1]
		if phase.Start < previous.Start {
			return fmt.Errorf("%w: phase %d %q starts before phase %d", ErrInvalidSchedule, i, phase.Name, i-1)
		}
		if phase.Start < previous.End {
			return fmt.Errorf("%w: phase %d %q overlaps %q", ErrInvalidSchedule, i, phase.Name, previous.Name)
		}
	}
	return nil
}
