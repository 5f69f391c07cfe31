package panel

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/format"
)

// Controller is the subset of the TimeKeeper the panel drives.
type Controller interface {
	PlayPause()
	Stop() error
	AdjustFocus(direction model.Direction) error
	AdjustBreak(direction model.Direction) error
	Snapshot() timekeeper.Snapshot
}

var (
	titleColor  = color.NRGBA{R: 224, G: 108, B: 117, A: 255}
	pausedColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

// Window is the main timer window.
type Window struct {
	window     fyne.Window
	controller Controller

	focusLabel *widget.Label
	breakLabel *widget.Label
	focusDown  *widget.Button
	focusUp    *widget.Button
	breakDown  *widget.Button
	breakUp    *widget.Button

	playButton *widget.Button
	stopButton *widget.Button

	sessionBox     *fyne.Container
	titleLabel     *canvas.Text
	remainingLabel *widget.Label
	pausedLabel    *canvas.Text
	progress       *widget.ProgressBar
}

// New creates the timer window and renders the controller's current state.
func New(app fyne.App, controller Controller) *Window {
	window := app.NewWindow("Pomodoro")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	panel := &Window{
		window:     window,
		controller: controller,
		focusLabel: widget.NewLabel(""),
		breakLabel: widget.NewLabel(""),
	}

	panel.focusDown = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		_ = controller.AdjustFocus(model.Decrease)
		panel.refresh()
	})
	panel.focusUp = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		_ = controller.AdjustFocus(model.Increase)
		panel.refresh()
	})
	panel.breakDown = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		_ = controller.AdjustBreak(model.Decrease)
		panel.refresh()
	})
	panel.breakUp = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		_ = controller.AdjustBreak(model.Increase)
		panel.refresh()
	})

	panel.playButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		controller.PlayPause()
		panel.refresh()
	})
	panel.stopButton = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		_ = controller.Stop()
		panel.refresh()
	})

	panel.titleLabel = canvas.NewText("", titleColor)
	panel.titleLabel.Alignment = fyne.TextAlignCenter
	panel.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	panel.titleLabel.TextSize = 20

	panel.remainingLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})

	panel.pausedLabel = canvas.NewText("", pausedColor)
	panel.pausedLabel.Alignment = fyne.TextAlignCenter
	panel.pausedLabel.TextStyle = fyne.TextStyle{Bold: true}

	panel.progress = widget.NewProgressBar()
	panel.progress.Min = 0
	panel.progress.Max = 100

	panel.sessionBox = container.NewVBox(
		panel.titleLabel,
		panel.remainingLabel,
		panel.progress,
		panel.pausedLabel,
	)

	durations := container.NewVBox(
		container.NewHBox(panel.focusLabel, layout.NewSpacer(), panel.focusDown, panel.focusUp),
		container.NewHBox(panel.breakLabel, layout.NewSpacer(), panel.breakDown, panel.breakUp),
	)
	controls := container.NewHBox(layout.NewSpacer(), panel.playButton, panel.stopButton, layout.NewSpacer())

	window.SetContent(container.NewPadded(container.NewVBox(
		durations,
		widget.NewSeparator(),
		controls,
		panel.sessionBox,
	)))
	window.Resize(fyne.NewSize(340, 280))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	panel.Render(controller.Snapshot())
	return panel
}

// Window returns the underlying fyne window.
func (panel *Window) Window() fyne.Window {
	return panel.window
}

// Show displays and focuses the window.
func (panel *Window) Show() {
	panel.window.Show()
	panel.window.RequestFocus()
}

// SetOnClose replaces the default hide-on-close behaviour.
func (panel *Window) SetOnClose(handler func()) {
	panel.window.SetCloseIntercept(handler)
}

// Render applies a snapshot to the widgets. Must run on the fyne goroutine.
func (panel *Window) Render(snapshot timekeeper.Snapshot) {
	view := format.Render(snapshot)

	panel.focusLabel.SetText(view.FocusText)
	panel.breakLabel.SetText(view.BreakText)
	setEnabled(view.CanAdjust, panel.focusDown, panel.focusUp, panel.breakDown, panel.breakUp)
	setEnabled(view.CanStop, panel.stopButton)

	if view.Running {
		panel.playButton.SetIcon(theme.MediaPauseIcon())
	} else {
		panel.playButton.SetIcon(theme.MediaPlayIcon())
	}

	if !view.ShowSession {
		panel.sessionBox.Hide()
		return
	}
	panel.titleLabel.Text = view.Title
	panel.titleLabel.Refresh()
	panel.remainingLabel.SetText(view.Subtitle)
	panel.pausedLabel.Text = view.PausedText
	panel.pausedLabel.Refresh()
	panel.progress.SetValue(view.Progress)
	panel.sessionBox.Show()
}

// refresh re-renders after a command. A refused command changes nothing, so
// its error needs no handling here.
func (panel *Window) refresh() {
	panel.Render(panel.controller.Snapshot())
}

func setEnabled(enabled bool, buttons ...*widget.Button) {
	for _, button := range buttons {
		if enabled {
			button.Enable()
		} else {
			button.Disable()
		}
	}
}
