package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/melt/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompile a file whenever a source in its directory changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			root, _ := cmd.Flags().GetString("root")
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), args[0], app.WatchOptions{
				Quiet:    quiet,
				Root:     root,
				Output:   cmd.OutOrStdout(),
				Debounce: debounce,
			})
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Do not print compiled JavaScript")
	cmd.Flags().StringP("root", "r", "", "Directory to start the project lookup from (default: current directory)")
	cmd.Flags().Duration("debounce", 0, "Quiet period before a rebuild (default 50ms)")
	return cmd
}
