package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apihttp "pomodoro/internal/api/http"
	"pomodoro/internal/app"
	"pomodoro/internal/core/ticker"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/metrics"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

// newLogger returns the configured logger and a close function for the log
// file, if one was opened. fallback receives logs when no file is set.
func newLogger(appCtx *AppContext, fallback io.Writer) (*slog.Logger, func(), error) {
	if appCtx.Config.LogFile == "" {
		return app.NewLogger(appCtx.Config.LogLevel, appCtx.Config.LogFormat, fallback), func() {}, nil
	}
	file, err := os.OpenFile(appCtx.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := app.NewLogger(appCtx.Config.LogLevel, appCtx.Config.LogFormat, file)
	return logger, func() { _ = file.Close() }, nil
}

// loadSettings resolves the settings path and reads user preferences. Any
// failure is logged and the defaults are used; an empty path disables saving.
func loadSettings(appCtx *AppContext, logger *slog.Logger) (string, preferences.Settings) {
	path := appCtx.Config.SettingsPath
	if path == "" {
		resolved, err := storage.DefaultSettingsPath(appName)
		if err != nil {
			logger.Warn("settings path unavailable, using defaults", slog.String("error", err.Error()))
			return "", preferences.DefaultSettings()
		}
		path = resolved
	}

	settings, err := storage.LoadSettings(path)
	if err != nil {
		logger.Warn("settings file unreadable, using defaults",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
	return path, settings
}

func newTimeKeeper(appCtx *AppContext, notifier timekeeper.Notifier, logger *slog.Logger) *timekeeper.TimeKeeper {
	return timekeeper.New(ticker.New(), notifier, timekeeper.Config{
		TickInterval: appCtx.Config.TickInterval,
		Logger:       logger,
	})
}

// controlAPI is the optional local HTTP server. A nil *controlAPI is valid
// and does nothing.
type controlAPI struct {
	server   *apihttp.Server
	http     *http.Server
	listener net.Listener
	errCh    chan error
	logger   *slog.Logger
}

// startControlAPI serves the control API on addr until Shutdown. An empty
// addr returns a nil api.
func startControlAPI(ctx context.Context, addr string, keeper *timekeeper.TimeKeeper, logger *slog.Logger) (*controlAPI, error) {
	if addr == "" {
		return nil, nil
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	reg := prometheus.NewRegistry()
	metrics.Register(reg)
	go metrics.Observe(ctx, keeper.Subscribe(64))

	server := apihttp.NewServer(keeper, apihttp.WithLogger(logger), apihttp.WithMetrics(reg))
	go server.Run(ctx, keeper.Subscribe(64))

	api := &controlAPI{
		server: server,
		http: &http.Server{
			Handler:           server,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		listener: listener,
		errCh:    make(chan error, 1),
		logger:   logger,
	}
	go func() {
		err := api.http.Serve(listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		api.errCh <- err
	}()

	logger.Info("control api started", slog.String("addr", api.Addr()))
	return api, nil
}

func (api *controlAPI) Addr() string {
	if api == nil {
		return ""
	}
	return api.listener.Addr().String()
}

// Errors reports a server failure. It never fires for a nil api.
func (api *controlAPI) Errors() <-chan error {
	if api == nil {
		return nil
	}
	return api.errCh
}

func (api *controlAPI) Shutdown() {
	if api == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	api.server.Close()
	if err := api.http.Shutdown(shutdownCtx); err != nil {
		api.logger.Warn("control api shutdown error", slog.String("error", err.Error()))
	}
	api.logger.Info("control api stopped")
}
