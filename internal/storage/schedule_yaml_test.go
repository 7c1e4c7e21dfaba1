package storage

import (
	"os"
	"path/filepath"
	"testing"

	"deepworktimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSchedule = `
phases:
  - start: "08:00"
    end: "08:25"
    name: "Focus #1"
    category: focus
  - start: "08:25"
    end: "08:30:30"
    name: "Short Break"
    category: short_break
  - start: "12:00"
    end: "12:50"
    name: "Lunch Break"
`

func TestParseSchedule(t *testing.T) {
	phases, err := ParseSchedule([]byte(sampleSchedule))
	require.NoError(t, err)
	require.Len(t, phases, 3)

	assert.Equal(t, model.Phase{Start: model.Clock(8, 0, 0), End: model.Clock(8, 25, 0), Name: "Focus #1", Category: model.CategoryFocus}, phases[0])
	assert.Equal(t, model.Clock(8, 30, 30), phases[1].End)
	assert.Equal(t, model.CategoryFocus, phases[2].Category, "missing category defaults to focus")
}

func TestParseScheduleRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"yaml":     "phases: [",
		"time":     "phases:\n  - {start: '8', end: '09:00', name: x}\n",
		"inverted": "phases:\n  - {start: '09:00', end: '08:00', name: x}\n",
		"overlap":  "phases:\n  - {start: '08:00', end: '09:00', name: a}\n  - {start: '08:30', end: '09:30', name: b}\n",
		"category": "phases:\n  - {start: '08:00', end: '09:00', name: a, category: nap}\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSchedule([]byte(input))
			assert.Error(t, err)
		})
	}
}

func TestMarshalScheduleRoundTrip(t *testing.T) {
	phases, err := ParseSchedule([]byte(sampleSchedule))
	require.NoError(t, err)

	raw, err := MarshalSchedule(phases)
	require.NoError(t, err)
	again, err := ParseSchedule(raw)
	require.NoError(t, err)
	assert.Equal(t, phases, again)
}

func TestLoadSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSchedule), 0o644))

	phases, err := LoadSchedule(path)
	require.NoError(t, err)
	assert.Len(t, phases, 3)

	_, err = LoadSchedule(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
