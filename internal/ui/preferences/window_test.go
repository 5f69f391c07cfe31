package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/notify"
)

func TestWindowSaveCollectsValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved *Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = &settings
	})

	test.Tap(prefs.sound)
	prefs.volume.SetValue(-2)
	prefs.toneHz.SetText("440")
	prefs.cues.SetSelected(cueModeLabels[notify.CueModeTransition])
	prefs.handleSave()

	require.NotNil(t, saved)
	assert.False(t, saved.SoundEnabled)
	assert.Equal(t, -2.0, saved.Volume)
	assert.Equal(t, notify.CueModeTransition, saved.CueMode)
	assert.Equal(t, 440.0, saved.ToneHz)
	assert.True(t, saved.DesktopNotifications)
}

func TestParseToneHz(t *testing.T) {
	hz, ok := parseToneHz("440")
	assert.True(t, ok)
	assert.Equal(t, 440.0, hz)

	_, ok = parseToneHz("20")
	assert.False(t, ok)
	_, ok = parseToneHz("loud")
	assert.False(t, ok)
}

func TestDefaultSettingsChime(t *testing.T) {
	chime := DefaultSettings().ChimeSettings()
	assert.True(t, chime.Enabled)
	assert.Equal(t, 880.0, chime.ToneHz)
	assert.Zero(t, chime.Volume)
}
