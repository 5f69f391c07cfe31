package cli

import (
	"errors"
	"log/slog"
	"os/signal"

	"github.com/spf13/cobra"

	"pomodoro/internal/notify"
)

func newServeCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the timer headless, controlled only through the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Config.ControlAddr == "" {
				return errors.New("serve requires --control-addr")
			}

			logger, closeLog, err := newLogger(appCtx, appCtx.IO.ErrOut)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals()...)
			defer stop()

			keeper := newTimeKeeper(appCtx, notify.Log{Logger: logger}, logger)
			defer keeper.Close()

			api, err := startControlAPI(ctx, appCtx.Config.ControlAddr, keeper, logger)
			if err != nil {
				return err
			}
			defer api.Shutdown()

			select {
			case <-ctx.Done():
				logger.Info("shutdown signal received")
				return nil
			case err := <-api.Errors():
				if err != nil {
					logger.Error("control api error", slog.String("error", err.Error()))
				}
				return err
			}
		},
	}
}
