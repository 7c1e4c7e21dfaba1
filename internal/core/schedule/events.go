package schedule

// Update is the result of one re-evaluation. The Changed flags are set only
// when the identity of the current or next phase differs from the previous
// evaluation; Remaining is refreshed every time.
type Update struct {
	Snapshot
	CurrentChanged bool
	NextChanged    bool
}

// Changed reports whether any phase identity changed.
func (update Update) Changed() bool {
	return update.CurrentChanged || update.NextChanged
}

// Diff compares next against previous. A nil previous marks everything changed.
func Diff(previous *Snapshot, next Snapshot) Update {
	if previous == nil {
		return Update{Snapshot: next, CurrentChanged: true, NextChanged: true}
	}
	return Update{
		Snapshot:       next,
		CurrentChanged: previous.CurrentIndex != next.CurrentIndex,
		NextChanged:    previous.NextIndex != next.NextIndex,
	}
}
