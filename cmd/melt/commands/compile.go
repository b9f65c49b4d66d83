package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/melt/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Compile source files and their dependencies to JavaScript",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			quiet, _ := cmd.Flags().GetBool("quiet")
			root, _ := cmd.Flags().GetString("root")

			return c.app.Compile(cmd.Context(), args, app.CompileOptions{
				Quiet:  quiet,
				Root:   root,
				Output: cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "Do not print compiled JavaScript")
	cmd.Flags().StringP("root", "r", "", "Directory to start the project lookup from (default: current directory)")
	return cmd
}
