package notify

import (
	"fyne.io/fyne/v2"

	"pomodoro/internal/core/timekeeper"
)

// Desktop shows a system notification through the fyne app.
type Desktop struct {
	App fyne.App
}

func (notifier Desktop) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	if notifier.App == nil {
		return
	}
	title, body := Message(cue, completion)
	fyne.Do(func() {
		notifier.App.SendNotification(fyne.NewNotification(title, body))
	})
}
