package cli

import "github.com/spf13/cobra"

func newVersionCommand(appCtx *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version/build metadata",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(appCtx)
		},
	}
}
