package session

import (
	"github.com/google/uuid"

	"pomodoro/internal/core/model"
)

// Phase is one of the two alternating timed states.
type Phase string

const (
	PhaseFocusing Phase = "focusing"
	PhaseOnBreak  Phase = "on_break"
)

// Label returns the human-readable phase name.
func (phase Phase) Label() string {
	switch phase {
	case PhaseFocusing:
		return "Focusing"
	case PhaseOnBreak:
		return "On Break"
	default:
		return ""
	}
}

// Next returns the phase that follows this one.
func (phase Phase) Next() Phase {
	if phase == PhaseFocusing {
		return PhaseOnBreak
	}
	return PhaseFocusing
}

// Session records the active phase and its remaining time.
type Session struct {
	ID               string
	Phase            Phase
	RemainingSeconds int
	// CompletedFocus counts focus phases that ran to zero in this session.
	CompletedFocus int
}

// Start creates a focusing session for the given focus length.
func Start(focusMinutes int) Session {
	return Session{
		ID:               uuid.NewString(),
		Phase:            PhaseFocusing,
		RemainingSeconds: focusMinutes * 60,
	}
}

// Advance consumes one second of the current phase.
func Advance(current Session) Session {
	current.RemainingSeconds = max(0, current.RemainingSeconds-1)
	return current
}

// Transition flips the phase and refills the remaining time from the
// durations configured at the moment of the call.
func Transition(current Session, durations model.Durations) Session {
	if current.Phase == PhaseFocusing {
		current.CompletedFocus++
	}
	current.Phase = current.Phase.Next()
	current.RemainingSeconds = PhaseSeconds(current.Phase, durations)
	return current
}

// Step runs one tick: a session already at zero transitions, any other
// session advances. The zero check happens before decrementing, so the tick
// after a phase reaches zero performs the transition.
func Step(current Session, durations model.Durations) (Session, bool) {
	if current.RemainingSeconds == 0 {
		return Transition(current, durations), true
	}
	return Advance(current), false
}

// PhaseSeconds returns the configured length of phase in seconds.
func PhaseSeconds(phase Phase, durations model.Durations) int {
	if phase == PhaseFocusing {
		return durations.FocusSeconds()
	}
	return durations.BreakSeconds()
}
