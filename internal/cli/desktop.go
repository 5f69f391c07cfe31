package cli

import (
	"context"
	"log/slog"
	"os/signal"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/panel"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

func runDesktop(ctx context.Context, appCtx *AppContext) error {
	logger, closeLog, err := newLogger(appCtx, appCtx.IO.ErrOut)
	if err != nil {
		return err
	}
	defer closeLog()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	ctx, stop := signal.NotifyContext(ctx, interruptSignals()...)
	defer stop()

	settingsPath, settings := loadSettings(appCtx, logger)

	fyneApp := fyneapp.NewWithID("io.pomodoro.app")
	fyneApp.SetIcon(resources.AppIcon())
	chime := notify.NewChime(settings.ChimeSettings(), logger)
	notifier := &notify.Swappable{}
	notifier.Set(desktopNotifier(settings, chime, fyneApp, logger))

	keeper := newTimeKeeper(appCtx, notifier, logger)
	defer keeper.Close()

	timerWindow := panel.New(fyneApp, keeper)
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		chime.UpdateSettings(updated.ChimeSettings())
		notifier.Set(desktopNotifier(updated, chime, fyneApp, logger))
		if settingsPath == "" {
			return
		}
		if err := storage.SaveSettings(settingsPath, updated); err != nil {
			logger.Warn("save settings failed", slog.String("path", settingsPath), slog.String("error", err.Error()))
			return
		}
		logger.Info("settings saved", slog.String("path", settingsPath))
	})
	timerWindow.Window().SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Pomodoro", fyne.NewMenuItem("Preferences", prefsWindow.Show)),
	))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        timerWindow.Show,
			OnTogglePlay:  keeper.PlayPause,
			OnStop:        func() { _ = keeper.Stop() },
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
	} else {
		logger.Info("system tray unsupported on this platform, closing the window quits")
		timerWindow.SetOnClose(fyneApp.Quit)
	}

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				timerWindow.Render(snapshot)
				if trayManager != nil {
					trayManager.Update(snapshot)
				}
			})
		}
	}()

	api, err := startControlAPI(ctx, appCtx.Config.ControlAddr, keeper, logger)
	if err != nil {
		return err
	}
	defer api.Shutdown()

	stopped := make(chan struct{})
	go func() {
		select {
		case <-stopped:
			return
		case <-ctx.Done():
			logger.Info("shutdown signal received")
		case err := <-api.Errors():
			if err != nil {
				logger.Error("control api error", slog.String("error", err.Error()))
			}
		}
		fyne.Do(fyneApp.Quit)
	}()

	timerWindow.Show()
	fyneApp.Run()
	close(stopped)
	return nil
}

// desktopNotifier builds the cue pipeline for the current preferences. The
// chime checks its own enabled flag.
func desktopNotifier(settings preferences.Settings, chime *notify.Chime, fyneApp fyne.App, logger *slog.Logger) timekeeper.Notifier {
	notifiers := []timekeeper.Notifier{chime, notify.Log{Logger: logger}}
	if settings.DesktopNotifications {
		notifiers = append(notifiers, notify.Desktop{App: fyneApp})
	}
	return notify.Only(notify.Multi(notifiers...), settings.CueMode.Cues()...)
}
