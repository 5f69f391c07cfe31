package preferences

import (
	"pomodoro/internal/notify"
)

const (
	MinVolume     = -5.0
	MaxVolume     = 2.0
	MinToneHz     = 200.0
	MaxToneHz     = 2000.0
	defaultToneHz = 880.0
)

// Settings defines editable user preferences.
type Settings struct {
	SoundEnabled         bool
	Volume               float64
	ToneHz               float64
	DesktopNotifications bool
	CueMode              notify.CueMode
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		Volume:               0,
		ToneHz:               defaultToneHz,
		DesktopNotifications: true,
		CueMode:              notify.CueModeBoth,
	}
}

// ChimeSettings converts settings to the chime configuration.
func (settings Settings) ChimeSettings() notify.ChimeSettings {
	return notify.ChimeSettings{
		Enabled: settings.SoundEnabled,
		Volume:  settings.Volume,
		ToneHz:  settings.ToneHz,
	}
}
