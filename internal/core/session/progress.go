package session

import "pomodoro/internal/core/model"

// ProgressPercent returns how much of the current phase has elapsed, from 0
// to 100. A nil session reports 0.
func ProgressPercent(current *Session, durations model.Durations) float64 {
	if current == nil {
		return 0
	}
	total := PhaseSeconds(current.Phase, durations)
	if total <= 0 {
		return 0
	}
	progress := (1 - float64(current.RemainingSeconds)/float64(total)) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// IsComplete reports whether a progress value marks the end of a phase.
func IsComplete(progress float64) bool {
	return progress == 100
}
