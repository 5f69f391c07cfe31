package timekeeper

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
)

var (
	// ErrNoActiveSession is returned by Stop when there is nothing to stop.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionLocked is returned by duration adjustments during a session.
	ErrSessionLocked = errors.New("durations are locked while a session is active")
)

// TickSource invokes a callback once per period while armed. Disarm must
// prevent any further invocation of the callback it replaced.
type TickSource interface {
	Arm(callback func(), period time.Duration)
	Disarm()
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Logger       *slog.Logger
	Now          func() time.Time
}

// TimeKeeper owns the session, the configured durations and the run state.
// Every mutation goes through its methods; tick callbacks and user commands
// are serialized by mu.
type TimeKeeper struct {
	mu        sync.Mutex
	options   Config
	durations model.Durations
	session   *session.Session
	armed     bool
	paused    bool
	// generation changes on every arm and disarm so that callbacks from an
	// older arming are recognised and dropped.
	generation uint64
	ticks      TickSource
	notifier   Notifier
	events     []chan Event
	closed     bool
}

// New creates an idle TimeKeeper. notifier may be nil.
func New(ticks TickSource, notifier Notifier, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &TimeKeeper{
		options:   options,
		durations: model.DefaultDurations(),
		paused:    true,
		ticks:     ticks,
		notifier:  notifier,
	}
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// PlayPause toggles tick delivery, creating a focusing session the first
// time the clock is armed. The display-only paused flag flips on every call.
// Toggling while the phase sits at zero repeats the progress-complete cue.
func (keeper *TimeKeeper) PlayPause() {
	keeper.mu.Lock()

	keeper.paused = !keeper.paused
	if keeper.armed {
		keeper.disarmLocked()
		keeper.options.Logger.Debug("timer paused", keeper.logAttrsLocked()...)
	} else {
		if keeper.session == nil {
			started := session.Start(keeper.durations.FocusMinutes)
			keeper.session = &started
			keeper.options.Logger.Info("session started",
				slog.String("session_id", started.ID),
				slog.Int("focus_minutes", keeper.durations.FocusMinutes),
				slog.Int("break_minutes", keeper.durations.BreakMinutes),
			)
		}
		keeper.armLocked()
		keeper.options.Logger.Debug("timer armed", keeper.logAttrsLocked()...)
	}

	keeper.emitLocked(EventStateChange)
	current := *keeper.session
	generation := keeper.generation
	progress := session.ProgressPercent(&current, keeper.durations)
	keeper.mu.Unlock()

	if session.IsComplete(progress) {
		keeper.notifyIfCurrent(generation, CueProgressComplete, Completion{
			SessionID: current.ID,
			Finished:  current.Phase,
			Next:      current.Phase.Next(),
			At:        keeper.options.Now(),
		})
	}
}

// Stop destroys the session, disarms the clock and restores default
// durations. It is a no-op returning ErrNoActiveSession when idle.
func (keeper *TimeKeeper) Stop() error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.session == nil {
		return ErrNoActiveSession
	}

	sessionID := keeper.session.ID
	if keeper.armed {
		keeper.disarmLocked()
	}
	keeper.session = nil
	keeper.durations = model.DefaultDurations()
	keeper.paused = true

	keeper.options.Logger.Info("session stopped", slog.String("session_id", sessionID))
	keeper.emitLocked(EventStopped)
	return nil
}

// AdjustFocus steps the focus duration. It is a no-op returning
// ErrSessionLocked while a session exists.
func (keeper *TimeKeeper) AdjustFocus(direction model.Direction) error {
	return keeper.adjust(func(durations *model.Durations) {
		durations.FocusMinutes = model.StepFocus(durations.FocusMinutes, direction)
	})
}

// AdjustBreak steps the break duration. It is a no-op returning
// ErrSessionLocked while a session exists.
func (keeper *TimeKeeper) AdjustBreak(direction model.Direction) error {
	return keeper.adjust(func(durations *model.Durations) {
		durations.BreakMinutes = model.StepBreak(durations.BreakMinutes, direction)
	})
}

// Snapshot returns the current observable state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Active reports whether a session exists.
func (keeper *TimeKeeper) Active() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.session != nil
}

// Durations returns the configured phase lengths.
func (keeper *TimeKeeper) Durations() model.Durations {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.durations
}

// Close disarms the clock and closes all observers. The session is left as
// it was.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	if keeper.armed {
		keeper.disarmLocked()
	}
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) adjust(apply func(*model.Durations)) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.session != nil {
		return ErrSessionLocked
	}
	before := keeper.durations
	apply(&keeper.durations)
	if keeper.durations == before {
		return nil
	}

	keeper.options.Logger.Debug("durations changed",
		slog.Int("focus_minutes", keeper.durations.FocusMinutes),
		slog.Int("break_minutes", keeper.durations.BreakMinutes),
	)
	keeper.emitLocked(EventConfigChange)
	return nil
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	if generation != keeper.generation || !keeper.armed || keeper.session == nil {
		keeper.mu.Unlock()
		return
	}

	now := keeper.options.Now()
	finished := keeper.session.Phase
	next, transitioned := session.Step(*keeper.session, keeper.durations)
	keeper.session = &next
	progress := session.ProgressPercent(keeper.session, keeper.durations)

	if transitioned {
		keeper.options.Logger.Info("phase transition",
			slog.String("session_id", next.ID),
			slog.String("from", string(finished)),
			slog.String("to", string(next.Phase)),
			slog.Int("remaining", next.RemainingSeconds),
		)
		keeper.emitLocked(EventPhaseChange)
	} else {
		keeper.emitLocked(EventTick)
	}
	keeper.mu.Unlock()

	if transitioned {
		keeper.notifyIfCurrent(generation, CuePhaseTransition, Completion{
			SessionID: next.ID,
			Finished:  finished,
			Next:      next.Phase,
			At:        now,
		})
	}
	if session.IsComplete(progress) {
		keeper.notifyIfCurrent(generation, CueProgressComplete, Completion{
			SessionID: next.ID,
			Finished:  next.Phase,
			Next:      next.Phase.Next(),
			At:        now,
		})
	}
}

// notifyIfCurrent delivers a cue unless the arming that produced it has been
// replaced or its session stopped since the lock was released.
func (keeper *TimeKeeper) notifyIfCurrent(generation uint64, cue Cue, completion Completion) {
	if keeper.notifier == nil {
		return
	}
	keeper.mu.Lock()
	current := generation == keeper.generation &&
		keeper.session != nil && keeper.session.ID == completion.SessionID
	keeper.mu.Unlock()
	if !current {
		return
	}
	keeper.notifier.Notify(cue, completion)
}

func (keeper *TimeKeeper) armLocked() {
	keeper.armed = true
	keeper.generation++
	generation := keeper.generation
	if keeper.ticks != nil {
		keeper.ticks.Arm(func() {
			keeper.tick(generation)
		}, keeper.options.TickInterval)
	}
}

func (keeper *TimeKeeper) disarmLocked() {
	keeper.armed = false
	keeper.generation++
	if keeper.ticks != nil {
		keeper.ticks.Disarm()
	}
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Armed:        keeper.armed,
		Paused:       keeper.paused,
		FocusMinutes: keeper.durations.FocusMinutes,
		BreakMinutes: keeper.durations.BreakMinutes,
	}
	if keeper.session == nil {
		return snapshot
	}
	snapshot.Active = true
	snapshot.SessionID = keeper.session.ID
	snapshot.Phase = keeper.session.Phase
	snapshot.Label = keeper.session.Phase.Label()
	snapshot.RemainingSeconds = keeper.session.RemainingSeconds
	snapshot.PhaseSeconds = session.PhaseSeconds(keeper.session.Phase, keeper.durations)
	snapshot.CompletedFocus = keeper.session.CompletedFocus
	snapshot.Progress = session.ProgressPercent(keeper.session, keeper.durations)
	return snapshot
}

func (keeper *TimeKeeper) logAttrsLocked() []any {
	attrs := []any{slog.Bool("armed", keeper.armed), slog.Bool("paused", keeper.paused)}
	if keeper.session != nil {
		attrs = append(attrs,
			slog.String("session_id", keeper.session.ID),
			slog.String("phase", string(keeper.session.Phase)),
			slog.Int("remaining", keeper.session.RemainingSeconds),
		)
	}
	return attrs
}

func (keeper *TimeKeeper) emitLocked(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		At:       keeper.options.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
