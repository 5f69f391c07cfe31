package apihttp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
)

// Controller is the subset of the TimeKeeper the control API drives.
type Controller interface {
	PlayPause()
	Stop() error
	AdjustFocus(direction model.Direction) error
	AdjustBreak(direction model.Direction) error
	Snapshot() timekeeper.Snapshot
}

type Server struct {
	controller Controller
	logger     *slog.Logger
	gatherer   prometheus.Gatherer
	wsHub      *wsHub
	handler    http.Handler
}

type ServerOption func(*Server)

func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics exposes gatherer on GET /metrics.
func WithMetrics(gatherer prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// NewServer builds the router and starts the websocket hub. Call Close to
// stop the hub.
func NewServer(controller Controller, opts ...ServerOption) *Server {
	s := &Server{
		controller: controller,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wsHub = newWSHub(s.logger, func() wsMessage {
		return wsMessage{Type: "snapshot", Data: s.controller.Snapshot()}
	})
	go s.wsHub.run()

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recovery(s.logger))
	r.Use(Metrics)

	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Post("/play-pause", s.handlePlayPause)
	r.Post("/stop", s.handleStop)
	r.Post("/focus/{direction}", s.handleAdjust(controller.AdjustFocus))
	r.Post("/break/{direction}", s.handleAdjust(controller.AdjustBreak))
	r.Get("/ws", s.handleWS)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.handler = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run forwards controller events to websocket clients until ctx is done or
// events is closed.
func (s *Server) Run(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			s.wsHub.Broadcast(string(event.Type), event.Snapshot)
		}
	}
}

// Close disconnects all websocket clients.
func (s *Server) Close() {
	s.wsHub.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handlePlayPause(w http.ResponseWriter, _ *http.Request) {
	s.controller.PlayPause()
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleStop(w http.ResponseWriter, _ *http.Request) {
	if err := s.controller.Stop(); err != nil {
		writeControlError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleAdjust(adjust func(model.Direction) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		direction, err := model.ParseDirection(chi.URLParam(r, "direction"))
		if err != nil {
			writeControlError(w, err)
			return
		}
		if err := adjust(direction); err != nil {
			writeControlError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.controller.Snapshot())
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("ws upgrade failed", slog.String("error", err.Error()))
		return
	}
	client := &wsClient{
		hub:  s.wsHub,
		conn: conn,
		send: make(chan []byte, 64),
	}
	if !s.wsHub.add(client) {
		_ = conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}

func writeControlError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidDirection):
		writeError(w, http.StatusBadRequest, "invalid_direction", err.Error())
	case errors.Is(err, timekeeper.ErrNoActiveSession):
		writeError(w, http.StatusConflict, "no_active_session", err.Error())
	case errors.Is(err, timekeeper.ErrSessionLocked):
		writeError(w, http.StatusConflict, "session_locked", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
