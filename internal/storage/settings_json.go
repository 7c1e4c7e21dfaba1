package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"deepworktimer/internal/core/model"
	"deepworktimer/internal/platform"
)

const settingsFileName = "settings.json"

// LoadSettings reads settings from a JSON file. A missing file yields the
// defaults with no error; an unreadable or corrupt file yields the defaults
// together with the error. Fields absent from the file keep their defaults.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	fileData := model.DefaultSettings()
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings json: %w", err)
	}

	return fileData.Normalize(), nil
}

// SaveSettings writes settings to a JSON file, creating its directory.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	serialized, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the per-user settings file location for appName.
func SettingsPath(service platform.Service, appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}
