package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pomodoro/internal/app"
	"pomodoro/internal/platform"
)

const appName = "Pomodoro"

// Execute runs the command line and returns the process exit code.
func Execute(build BuildInfo, streams IOStreams) int {
	appCtx := &AppContext{Build: build, IO: streams, Config: app.LoadConfig()}
	root := newRootCommand(appCtx)

	if err := root.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			fmt.Fprintln(streams.ErrOut, "Pomodoro is already running.")
			return 0
		}
		fmt.Fprintln(streams.ErrOut, "ERROR:", err)
		return 1
	}
	return 0
}

func newRootCommand(appCtx *AppContext) *cobra.Command {
	showVersion := false

	root := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro focus and break timer",
		Long:  "pomodoro alternates focus and break countdowns. Without a subcommand it opens the desktop window and tray menu.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(appCtx)
				return nil
			}
			return runDesktop(cmd.Context(), appCtx)
		},
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&appCtx.Config.SettingsPath, "settings", appCtx.Config.SettingsPath, "Path to the settings file (default: user config dir)")
	flags.StringVar(&appCtx.Config.LogLevel, "log-level", appCtx.Config.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&appCtx.Config.LogFormat, "log-format", appCtx.Config.LogFormat, "Log format: text or json")
	flags.StringVar(&appCtx.Config.LogFile, "log-file", appCtx.Config.LogFile, "Write logs to this file instead of stderr")
	flags.StringVar(&appCtx.Config.ControlAddr, "control-addr", appCtx.Config.ControlAddr, "Serve the control API on this address, e.g. 127.0.0.1:7070")
	flags.DurationVar(&appCtx.Config.TickInterval, "tick-interval", appCtx.Config.TickInterval, "Wall-clock length of one countdown second")
	root.Flags().BoolVar(&showVersion, "version", false, "Print version info")

	root.AddCommand(newTUICommand(appCtx))
	root.AddCommand(newServeCommand(appCtx))
	root.AddCommand(newVersionCommand(appCtx))

	return root
}

func printVersion(appCtx *AppContext) {
	version := appCtx.Build.Version
	if version == "" {
		version = "dev"
	}
	commit := appCtx.Build.Commit
	if commit == "" {
		commit = "unknown"
	}
	date := appCtx.Build.Date
	if date == "" {
		date = "unknown"
	}

	fmt.Fprintf(appCtx.IO.Out, "pomodoro version %s\ncommit: %s\nbuild_date: %s\n", version, commit, date)
}
