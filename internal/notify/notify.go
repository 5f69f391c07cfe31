// Package notify implements phase-completion notifiers for the timekeeper.
//
// The timekeeper fires two cues around the end of a phase: one when the
// displayed progress reaches 100 and one when the phase actually flips. Both
// are forwarded as-is; use Only to keep a single one.
package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"pomodoro/internal/core/timekeeper"
)

// CueMode selects which cues reach the audible and desktop notifiers.
type CueMode string

const (
	CueModeBoth       CueMode = "both"
	CueModeTransition CueMode = "transition"
	CueModeProgress   CueMode = "progress"
)

// ParseCueMode returns the mode for value, or false for unknown values.
func ParseCueMode(value string) (CueMode, bool) {
	switch CueMode(strings.ToLower(strings.TrimSpace(value))) {
	case CueModeBoth:
		return CueModeBoth, true
	case CueModeTransition:
		return CueModeTransition, true
	case CueModeProgress:
		return CueModeProgress, true
	default:
		return "", false
	}
}

// Cues returns the cues enabled by mode.
func (mode CueMode) Cues() []timekeeper.Cue {
	switch mode {
	case CueModeTransition:
		return []timekeeper.Cue{timekeeper.CuePhaseTransition}
	case CueModeProgress:
		return []timekeeper.Cue{timekeeper.CueProgressComplete}
	default:
		return []timekeeper.Cue{timekeeper.CuePhaseTransition, timekeeper.CueProgressComplete}
	}
}

type multi []timekeeper.Notifier

// Multi fans every cue out to all non-nil notifiers in order.
func Multi(notifiers ...timekeeper.Notifier) timekeeper.Notifier {
	filtered := make(multi, 0, len(notifiers))
	for _, notifier := range notifiers {
		if notifier != nil {
			filtered = append(filtered, notifier)
		}
	}
	return filtered
}

func (notifiers multi) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	for _, notifier := range notifiers {
		notifier.Notify(cue, completion)
	}
}

type only struct {
	next timekeeper.Notifier
	cues map[timekeeper.Cue]struct{}
}

// Only forwards the listed cues to next and drops the rest.
func Only(next timekeeper.Notifier, cues ...timekeeper.Cue) timekeeper.Notifier {
	allowed := make(map[timekeeper.Cue]struct{}, len(cues))
	for _, cue := range cues {
		allowed[cue] = struct{}{}
	}
	return &only{next: next, cues: allowed}
}

func (filter *only) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	if filter.next == nil {
		return
	}
	if _, ok := filter.cues[cue]; !ok {
		return
	}
	filter.next.Notify(cue, completion)
}

// Swappable forwards cues to a notifier that can be replaced while the
// timekeeper is running. The zero value drops every cue.
type Swappable struct {
	mu   sync.RWMutex
	next timekeeper.Notifier
}

// Set replaces the target notifier. nil disables forwarding.
func (swappable *Swappable) Set(next timekeeper.Notifier) {
	swappable.mu.Lock()
	defer swappable.mu.Unlock()
	swappable.next = next
}

func (swappable *Swappable) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	swappable.mu.RLock()
	next := swappable.next
	swappable.mu.RUnlock()
	if next != nil {
		next.Notify(cue, completion)
	}
}

// Log writes every cue to a structured logger.
type Log struct {
	Logger *slog.Logger
}

func (notifier Log) Notify(cue timekeeper.Cue, completion timekeeper.Completion) {
	logger := notifier.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("phase cue",
		slog.String("cue", string(cue)),
		slog.String("session_id", completion.SessionID),
		slog.String("finished", string(completion.Finished)),
		slog.String("next", string(completion.Next)),
	)
}

// Message returns the title and body shown for a cue.
func Message(cue timekeeper.Cue, completion timekeeper.Completion) (string, string) {
	finished := completion.Finished.Label()
	next := completion.Next.Label()
	if cue == timekeeper.CueProgressComplete {
		return fmt.Sprintf("%s complete", finished), fmt.Sprintf("%s time is up. %s is next.", finished, next)
	}
	return fmt.Sprintf("%s started", next), fmt.Sprintf("%s finished. %s starts now.", finished, next)
}
