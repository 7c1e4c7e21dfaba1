package storage

import (
	"fmt"
	"os"

	"deepworktimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

type yamlSchedule struct {
	Phases []yamlPhase `yaml:"phases"`
}

type yamlPhase struct {
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// LoadSchedule reads a day schedule definition from a YAML file.
func LoadSchedule(path string) (model.Schedule, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	return ParseSchedule(rawData)
}

// ParseSchedule decodes and validates a YAML schedule definition.
func ParseSchedule(rawData []byte) (model.Schedule, error) {
	var fileData yamlSchedule
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return nil, fmt.Errorf("parse schedule yaml: %w", err)
	}

	phases := make(model.Schedule, 0, len(fileData.Phases))
	for i, entry := range fileData.Phases {
		phase, err := entry.toPhase()
		if err != nil {
			return nil, fmt.Errorf("schedule phase %d: %w", i, err)
		}
		phases = append(phases, phase)
	}

	if err := phases.Validate(); err != nil {
		return nil, err
	}
	return phases, nil
}

// MarshalSchedule encodes phases in the same YAML layout ParseSchedule reads.
func MarshalSchedule(phases model.Schedule) ([]byte, error) {
	fileData := yamlSchedule{Phases: make([]yamlPhase, 0, len(phases))}
	for _, phase := range phases {
		fileData.Phases = append(fileData.Phases, yamlPhase{
			Start:    formatClock(phase.Start),
			End:      formatClock(phase.End),
			Name:     phase.Name,
			Category: string(phase.Category),
		})
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal schedule yaml: %w", err)
	}
	return serialized, nil
}

func (entry yamlPhase) toPhase() (model.Phase, error) {
	start, err := model.ParseTimeOfDay(entry.Start)
	if err != nil {
		return model.Phase{}, err
	}
	end, err := model.ParseTimeOfDay(entry.End)
	if err != nil {
		return model.Phase{}, err
	}
	category := model.Category(entry.Category)
	if category == "" {
		category = model.CategoryFocus
	}
	return model.Phase{Start: start, End: end, Name: entry.Name, Category: category}, nil
}

func formatClock(value model.TimeOfDay) string {
	seconds := int(value.Duration().Seconds()) % 60
	if seconds == 0 {
		return value.String()
	}
	return fmt.Sprintf("%s:%02d", value, seconds)
}
