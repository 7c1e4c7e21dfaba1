package model

import "time"

// Settings is the persisted process-wide state.
type Settings struct {
	PreferredScreenIndex int     `json:"PreferredScreenIndex"`
	WindowLeft           float64 `json:"WindowLeft"`
	WindowTop            float64 `json:"WindowTop"`
	Opacity              float64 `json:"Opacity"`
	GlobalHotkeysEnabled bool    `json:"GlobalHotkeysEnabled"`
	// NotificationDuration is in milliseconds.
	NotificationDuration int `json:"NotificationDuration"`
}

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		PreferredScreenIndex: 0,
		WindowLeft:           100,
		WindowTop:            100,
		Opacity:              0.85,
		GlobalHotkeysEnabled: true,
		NotificationDuration: 2000,
	}
}

// Normalize clamps out-of-range values.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.Opacity < 0 {
		settings.Opacity = 0
	}
	if settings.Opacity > 1 {
		settings.Opacity = 1
	}
	if settings.PreferredScreenIndex < 0 {
		settings.PreferredScreenIndex = defaults.PreferredScreenIndex
	}
	if settings.NotificationDuration < 0 {
		settings.NotificationDuration = defaults.NotificationDuration
	}
	return settings
}

// NotificationTimeout returns NotificationDuration as a time.Duration.
func (settings Settings) NotificationTimeout() time.Duration {
	return time.Duration(settings.NotificationDuration) * time.Millisecond
}
