package resources

import (
	"embed"
	"fmt"
	"sync"

	"deepworktimer/internal/core/model"
	"deepworktimer/internal/storage"
)

const scheduleDir = "schedule/"

// DefaultScheduleFile is the built-in work day.
const DefaultScheduleFile = "default.yaml"

//go:embed schedule/*.yaml
var scheduleFS embed.FS

var scheduleCache sync.Map

// Schedule returns the embedded schedule definition with the given file name.
func Schedule(fileName string) (model.Schedule, error) {
	path := scheduleDir + fileName
	if cached, ok := scheduleCache.Load(path); ok {
		return append(model.Schedule(nil), cached.(model.Schedule)...), nil
	}

	data, err := scheduleFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load schedule %s: %w", path, err)
	}
	phases, err := storage.ParseSchedule(data)
	if err != nil {
		return nil, fmt.Errorf("load schedule %s: %w", path, err)
	}

	scheduleCache.Store(path, phases)
	return append(model.Schedule(nil), phases...), nil
}

// MustDefaultSchedule returns the built-in day schedule or panics.
func MustDefaultSchedule() model.Schedule {
	phases, err := Schedule(DefaultScheduleFile)
	if err != nil {
		panic(err)
	}
	return phases
}
