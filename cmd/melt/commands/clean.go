package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/melt/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the project's compiled artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			return c.app.Clean(cmd.Context(), app.CleanOptions{Root: root})
		},
	}
	cmd.Flags().StringP("root", "r", "", "Directory to start the project lookup from (default: current directory)")
	return cmd
}
