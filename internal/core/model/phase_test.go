package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseIsActiveAtHalfOpen(t *testing.T) {
	phase := Phase{Start: Clock(8, 0, 0), End: Clock(8, 25, 0), Name: "Focus #1", Category: CategoryFocus}

	cases := []struct {
		name string
		at   TimeOfDay
		want bool
	}{
		{"before start", Clock(7, 59, 59), false},
		{"at start", Clock(8, 0, 0), true},
		{"inside", Clock(8, 10, 0), true},
		{"last nanosecond", Clock(8, 25, 0) - 1, true},
		{"at end", Clock(8, 25, 0), false},
		{"after end", Clock(9, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, phase.IsActiveAt(tc.at))
			assert.Equal(t, tc.at >= phase.Start && tc.at < phase.End, phase.IsActiveAt(tc.at))
		})
	}
}

func TestPhaseRemaining(t *testing.T) {
	phase := Phase{Start: Clock(8, 0, 0), End: Clock(8, 25, 0)}

	assert.Equal(t, 25*time.Minute, phase.Duration())
	assert.Equal(t, 25*time.Minute, phase.Remaining(Clock(7, 0, 0)), "not started reports full duration")
	assert.Equal(t, 15*time.Minute, phase.Remaining(Clock(8, 10, 0)))
	assert.Equal(t, time.Duration(0), phase.Remaining(Clock(8, 25, 0)))
	assert.Equal(t, time.Duration(0), phase.Remaining(Clock(12, 0, 0)))
}

func TestTimeOfDayOf(t *testing.T) {
	at := time.Date(2024, 3, 4, 8, 25, 30, 500, time.Local)
	assert.Equal(t, Clock(8, 25, 30)+500, TimeOfDayOf(at))
}

func TestParseTimeOfDay(t *testing.T) {
	value, err := ParseTimeOfDay("08:25")
	require.NoError(t, err)
	assert.Equal(t, Clock(8, 25, 0), value)

	value, err = ParseTimeOfDay(" 16:05:30 ")
	require.NoError(t, err)
	assert.Equal(t, Clock(16, 5, 30), value)

	for _, bad := range []string{"", "8", "24:00", "12:60", "aa:bb", "1:2:3:4", "-1:00"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "08:05", Clock(8, 5, 59).String())
	assert.Equal(t, "17:30", Clock(17, 30, 0).String())
}

func TestScheduleValidate(t *testing.T) {
	valid := Schedule{
		{Start: Clock(8, 0, 0), End: Clock(8, 25, 0), Name: "Focus #1", Category: CategoryFocus},
		{Start: Clock(8, 25, 0), End: Clock(8, 30, 0), Name: "Short Break", Category: CategoryShortBreak},
		{Start: Clock(9, 0, 0), End: Clock(9, 30, 0), Name: "Focus #2", Category: CategoryFocus},
	}
	require.NoError(t, valid.Validate())
	require.NoError(t, Schedule{}.Validate())

	inverted := Schedule{{Start: Clock(9, 0, 0), End: Clock(8, 0, 0), Name: "x", Category: CategoryFocus}}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidSchedule)

	overlapping := Schedule{
		{Start: Clock(8, 0, 0), End: Clock(8, 30, 0), Name: "a", Category: CategoryFocus},
		{Start: Clock(8, 15, 0), End: Clock(8, 45, 0), Name: "b", Category: CategoryFocus},
	}
	assert.ErrorIs(t, overlapping.Validate(), ErrInvalidSchedule)

	unsorted := Schedule{
		{Start: Clock(9, 0, 0), End: Clock(9, 30, 0), Name: "a", Category: CategoryFocus},
		{Start: Clock(8, 0, 0), End: Clock(8, 30, 0), Name: "b", Category: CategoryFocus},
	}
	assert.ErrorIs(t, unsorted.Validate(), ErrInvalidSchedule)

	unknown := Schedule{{Start: Clock(8, 0, 0), End: Clock(9, 0, 0), Name: "a", Category: "nap"}}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidSchedule)
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#1E90FF", CategoryFocus.Color())
	assert.Equal(t, NoPhaseColor, Category("").Color())
}

func TestSettingsNormalize(t *testing.T) {
	settings := Settings{Opacity: 3, PreferredScreenIndex: -2, NotificationDuration: -1}.Normalize()
	assert.Equal(t, 1.0, settings.Opacity)
	assert.Equal(t, 0, settings.PreferredScreenIndex)
	assert.Equal(t, 2000, settings.NotificationDuration)
	assert.Equal(t, 2*time.Second, DefaultSettings().NotificationTimeout())
}

func TestChordString(t *testing.T) {
	assert.Equal(t, "Ctrl+Alt+M", Chord{Modifiers: ModCtrl | ModAlt, Key: 'M'}.String())
}
