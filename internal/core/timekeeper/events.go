package timekeeper

import (
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange  EventType = "state_change"
	EventTick         EventType = "tick"
	EventPhaseChange  EventType = "phase_change"
	EventStopped      EventType = "stopped"
	EventConfigChange EventType = "config_change"
)

// Snapshot is a read-only copy of everything the presentation layer shows.
type Snapshot struct {
	Active           bool          `json:"active"`
	SessionID        string        `json:"session_id,omitempty"`
	Phase            session.Phase `json:"phase,omitempty"`
	Label            string        `json:"label,omitempty"`
	RemainingSeconds int           `json:"remaining_seconds"`
	PhaseSeconds     int           `json:"phase_seconds"`
	CompletedFocus   int           `json:"completed_focus"`
	Armed            bool          `json:"armed"`
	Paused           bool          `json:"paused"`
	Progress         float64       `json:"progress"`
	FocusMinutes     int           `json:"focus_minutes"`
	BreakMinutes     int           `json:"break_minutes"`
}

// Durations returns the configured phase lengths carried by the snapshot.
func (snapshot Snapshot) Durations() model.Durations {
	return model.Durations{
		FocusMinutes: snapshot.FocusMinutes,
		BreakMinutes: snapshot.BreakMinutes,
	}
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}

// Cue identifies which completion trigger fired.
type Cue string

const (
	// CuePhaseTransition fires together with the phase flip.
	CuePhaseTransition Cue = "phase_transition"
	// CueProgressComplete fires when a displayed progress value reaches 100.
	CueProgressComplete Cue = "progress_complete"
)

// Completion describes the phase end that triggered a cue.
type Completion struct {
	SessionID string
	Finished  session.Phase
	Next      session.Phase
	At        time.Time
}

// Notifier receives completion cues. Notify runs outside the TimeKeeper lock;
// implementations may read Snapshot but must not issue commands.
type Notifier interface {
	Notify(cue Cue, completion Completion)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(cue Cue, completion Completion)

func (fn NotifierFunc) Notify(cue Cue, completion Completion) {
	fn(cue, completion)
}
