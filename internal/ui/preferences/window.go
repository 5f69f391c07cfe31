package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/notify"
)

var cueModeLabels = map[notify.CueMode]string{
	notify.CueModeBoth:       "Progress complete and phase change",
	notify.CueModeTransition: "Phase change only",
	notify.CueModeProgress:   "Progress complete only",
}

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	app      fyne.App
	settings Settings
	onSave   func(Settings)
	sound    *widget.Check
	volume   *widget.Slider
	toneHz   *widget.Entry
	desktop  *widget.Check
	cues     *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	sound := widget.NewCheck("Play a chime when a phase ends", nil)
	volume := widget.NewSlider(MinVolume, MaxVolume)
	volume.Step = 0.5
	toneHz := widget.NewEntry()
	desktop := widget.NewCheck("Show desktop notifications", nil)
	cues := widget.NewSelect([]string{
		cueModeLabels[notify.CueModeBoth],
		cueModeLabels[notify.CueModeTransition],
		cueModeLabels[notify.CueModeProgress],
	}, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Notifications", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		widget.NewLabel("Chime volume"),
		volume,
		container.NewHBox(widget.NewLabel("Chime pitch"), toneHz, widget.NewLabel("Hz")),
		desktop,
		widget.NewLabel("Notify on"),
		cues,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:  window,
		app:     app,
		onSave:  onSave,
		sound:   sound,
		volume:  volume,
		toneHz:  toneHz,
		desktop: desktop,
		cues:    cues,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(settings.Volume)
	prefs.toneHz.SetText(fmt.Sprintf("%d", int(settings.ToneHz)))
	prefs.desktop.SetChecked(settings.DesktopNotifications)
	prefs.cues.SetSelected(cueModeLabels[settings.CueMode])
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() Settings {
	settings := prefs.settings
	settings.SoundEnabled = prefs.sound.Checked
	settings.Volume = clampVolume(prefs.volume.Value)
	if hz, ok := parseToneHz(prefs.toneHz.Text); ok {
		settings.ToneHz = hz
	}
	settings.DesktopNotifications = prefs.desktop.Checked
	for mode, label := range cueModeLabels {
		if label == prefs.cues.Selected {
			settings.CueMode = mode
		}
	}
	return settings
}

func clampVolume(value float64) float64 {
	return max(MinVolume, min(MaxVolume, value))
}

func parseToneHz(value string) (float64, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	hz := float64(parsed)
	if hz < MinToneHz || hz > MaxToneHz {
		return 0, false
	}
	return hz, true
}
