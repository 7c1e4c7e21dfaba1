package preferences

import (
	"strconv"

	"deepworktimer/internal/core/model"
)

const (
	minOpacity = 0.2
	maxOpacity = 1.0
)

// Form holds the editable subset of the persisted settings.
type Form struct {
	Opacity              float64
	GlobalHotkeysEnabled bool
	NotificationMillis   string
}

// FormFrom copies the editable fields out of settings.
func FormFrom(settings model.Settings) Form {
	return Form{
		Opacity:              clampOpacity(settings.Opacity),
		GlobalHotkeysEnabled: settings.GlobalHotkeysEnabled,
		NotificationMillis:   strconv.Itoa(settings.NotificationDuration),
	}
}

// Apply writes the form onto settings. An unparsable or negative notification
// duration keeps the previous value.
func (form Form) Apply(settings *model.Settings) {
	settings.Opacity = clampOpacity(form.Opacity)
	settings.GlobalHotkeysEnabled = form.GlobalHotkeysEnabled
	if millis, ok := parseNonNegativeInt(form.NotificationMillis); ok {
		settings.NotificationDuration = millis
	}
}

func clampOpacity(opacity float64) float64 {
	if opacity < minOpacity {
		return minOpacity
	}
	if opacity > maxOpacity {
		return maxOpacity
	}
	return opacity
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
