package format

import (
	"fmt"

	"pomodoro/internal/core/timekeeper"
)

// Clock formats seconds as mm:ss. Negative input is shown as 00:00.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Minutes formats a whole number of minutes as mm:ss.
func Minutes(minutes int) string {
	return Clock(minutes * 60)
}

// View is the text and control state derived from a snapshot.
type View struct {
	FocusText   string
	BreakText   string
	Title       string
	Subtitle    string
	PausedText  string
	Progress    float64
	ShowSession bool
	CanAdjust   bool
	CanStop     bool
	Running     bool
}

// Render derives the view for a snapshot.
func Render(snapshot timekeeper.Snapshot) View {
	view := View{
		FocusText: "Focus Duration: " + Minutes(snapshot.FocusMinutes),
		BreakText: "Break Duration: " + Minutes(snapshot.BreakMinutes),
		Progress:  snapshot.Progress,
		CanAdjust: !snapshot.Active,
		CanStop:   snapshot.Active,
		Running:   snapshot.Armed,
	}
	if !snapshot.Active {
		return view
	}

	view.ShowSession = true
	view.Title = fmt.Sprintf("%s for %s minutes", snapshot.Label, Clock(snapshot.PhaseSeconds))
	view.Subtitle = fmt.Sprintf("%s remaining", Clock(snapshot.RemainingSeconds))
	if snapshot.Paused {
		view.PausedText = "PAUSED"
	}
	return view
}
