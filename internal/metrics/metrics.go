package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
)

var (
	TicksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pomodoro",
		Name:      "ticks_total",
		Help:      "Total number of ticks that advanced a session.",
	})

	PhaseTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pomodoro",
		Name:      "phase_transitions_total",
		Help:      "Total phase transitions by the phase entered.",
	}, []string{"to"})

	SessionsStartedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pomodoro",
		Name:      "sessions_started_total",
		Help:      "Total number of sessions started.",
	})

	SessionsStoppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pomodoro",
		Name:      "sessions_stopped_total",
		Help:      "Total number of sessions stopped by the user.",
	})

	ProgressPercent = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pomodoro",
		Name:      "progress_percent",
		Help:      "Progress through the current phase, 0 to 100.",
	})

	Armed = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pomodoro",
		Name:      "armed",
		Help:      "1 while the countdown clock is running.",
	})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pomodoro",
		Name:      "http_requests_total",
		Help:      "Total control API requests by method, route and status code.",
	}, []string{"method", "path", "status"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		TicksTotal,
		PhaseTransitionsTotal,
		SessionsStartedTotal,
		SessionsStoppedTotal,
		ProgressPercent,
		Armed,
		HTTPRequestsTotal,
	)
}

// Observe updates the collectors from a TimeKeeper event stream until ctx is
// done or the channel is closed.
func Observe(ctx context.Context, events <-chan timekeeper.Event) {
	var recorder Recorder
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			recorder.Record(event)
		}
	}
}

// Recorder tracks which session was last seen so that starts are counted once.
type Recorder struct {
	sessionID string
}

// Record applies a single event to the collectors.
func (recorder *Recorder) Record(event timekeeper.Event) {
	snapshot := event.Snapshot

	switch event.Type {
	case timekeeper.EventStateChange:
		if snapshot.Active && snapshot.SessionID != recorder.sessionID {
			recorder.sessionID = snapshot.SessionID
			SessionsStartedTotal.Inc()
		}
	case timekeeper.EventTick:
		TicksTotal.Inc()
	case timekeeper.EventPhaseChange:
		TicksTotal.Inc()
		PhaseTransitionsTotal.WithLabelValues(phaseLabel(snapshot.Phase)).Inc()
	case timekeeper.EventStopped:
		recorder.sessionID = ""
		SessionsStoppedTotal.Inc()
	}

	ProgressPercent.Set(snapshot.Progress)
	if snapshot.Armed {
		Armed.Set(1)
	} else {
		Armed.Set(0)
	}
}

func phaseLabel(phase session.Phase) string {
	if phase == "" {
		return "none"
	}
	return string(phase)
}
