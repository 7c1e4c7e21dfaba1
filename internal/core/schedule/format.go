package schedule

import (
	"fmt"
	"time"

	"deepworktimer/internal/core/model"
)

const emptyClock = "--:--"

// CurrentName returns the current phase name or "End of day".
func (snapshot Snapshot) CurrentName() string {
	if snapshot.Current == nil {
		return "End of day"
	}
	return snapshot.Current.Name
}

// NextName returns the next phase name or "End".
func (snapshot Snapshot) NextName() string {
	if snapshot.Next == nil {
		return "End"
	}
	return snapshot.Next.Name
}

// CurrentEnd formats the end of the current phase as HH:MM.
func (snapshot Snapshot) CurrentEnd() string {
	if snapshot.Current == nil {
		return emptyClock
	}
	return snapshot.Current.End.String()
}

// NextStart formats the start of the next phase as HH:MM.
func (snapshot Snapshot) NextStart() string {
	if snapshot.Next == nil {
		return emptyClock
	}
	return snapshot.Next.Start.String()
}

// RemainingText formats the remaining time as MM:SS.
func (snapshot Snapshot) RemainingText() string {
	return FormatRemaining(snapshot.Remaining)
}

// ClockText formats the evaluation time as HH:MM:SS.
func (snapshot Snapshot) ClockText() string {
	return snapshot.At.Format("15:04:05")
}

// Color returns the display color for the current phase.
func (snapshot Snapshot) Color() string {
	if snapshot.Current == nil {
		return model.NoPhaseColor
	}
	return snapshot.Current.Category.Color()
}

// Info returns a single-line summary of the current and next phase.
func (snapshot Snapshot) Info() string {
	if snapshot.Current == nil {
		return "End of work day"
	}
	if snapshot.Next != nil {
		return fmt.Sprintf("%s until %s | Next: %s at %s",
			snapshot.Current.Name, snapshot.CurrentEnd(), snapshot.Next.Name, snapshot.NextStart())
	}
	return fmt.Sprintf("%s until %s", snapshot.Current.Name, snapshot.CurrentEnd())
}

// FormatRemaining renders a duration as MM:SS. Minutes are not wrapped at 60.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
