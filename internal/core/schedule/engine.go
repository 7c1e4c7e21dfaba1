// Package schedule resolves the active phase of a day schedule and drives
// the periodic countdown re-evaluation.
package schedule

import (
	"time"

	"deepworktimer/internal/core/model"
)

// NoPhase is the index reported when no phase matches.
const NoPhase = -1

// IsActiveAt reports whether at lies inside the phase's half-open interval.
func IsActiveAt(phase model.Phase, at model.TimeOfDay) bool {
	return phase.IsActiveAt(at)
}

// Remaining returns the time left in phase at the given instant.
func Remaining(phase model.Phase, at model.TimeOfDay) time.Duration {
	return phase.Remaining(at)
}

// ResolveCurrent returns the index of the first phase in list order that is
// active at the given instant, or NoPhase.
func ResolveCurrent(phases model.Schedule, at model.TimeOfDay) int {
	for i, phase := range phases {
		if phase.IsActiveAt(at) {
			return i
		}
	}
	return NoPhase
}

// ResolveNext returns the index of the phase that follows current. Without a
// current phase it returns the earliest phase starting after at.
func ResolveNext(phases model.Schedule, current int, at model.TimeOfDay) int {
	if current >= 0 && current < len(phases) {
		if current+1 < len(phases) {
			return current + 1
		}
		return NoPhase
	}
	for i, phase := range phases {
		if phase.Start > at {
			return i
		}
	}
	return NoPhase
}

// Snapshot is the resolved schedule state at one instant.
type Snapshot struct {
	At           time.Time
	CurrentIndex int
	NextIndex    int
	Current      *model.Phase
	Next         *model.Phase
	Remaining    time.Duration
}

// Resolve computes the full snapshot for the given wall-clock time.
func Resolve(phases model.Schedule, now time.Time) Snapshot {
	at := model.TimeOfDayOf(now)
	current := ResolveCurrent(phases, at)
	next := ResolveNext(phases, current, at)

	snapshot := Snapshot{
		At:           now,
		CurrentIndex: current,
		NextIndex:    next,
	}
	if current != NoPhase {
		phase := phases[current]
		snapshot.Current = &phase
		snapshot.Remaining = phase.Remaining(at)
	}
	if next != NoPhase {
		phase := phases[next]
		snapshot.Next = &phase
	}
	return snapshot
}
