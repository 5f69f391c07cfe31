package cli

import (
	"errors"
	"io"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/internal/notify"
	"pomodoro/internal/ui/tui"
)

func newTUICommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal is owned by the UI, so logs only go to --log-file.
			logger, closeLog, err := newLogger(appCtx, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), interruptSignals()...)
			defer stop()

			_, settings := loadSettings(appCtx, logger)
			chime := notify.NewChime(settings.ChimeSettings(), logger)
			notifier := notify.Only(notify.Multi(chime, notify.Log{Logger: logger}), settings.CueMode.Cues()...)

			keeper := newTimeKeeper(appCtx, notifier, logger)
			defer keeper.Close()

			api, err := startControlAPI(ctx, appCtx.Config.ControlAddr, keeper, logger)
			if err != nil {
				return err
			}
			defer api.Shutdown()

			program := tea.NewProgram(
				tui.New(keeper, keeper.Subscribe(64)),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(appCtx.IO.In),
				tea.WithOutput(appCtx.IO.Out),
			)
			if _, err := program.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return nil
				}
				return err
			}
			return nil
		},
	}
}
