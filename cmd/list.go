package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List candidate files and how each takes part in a merge",
		Long: `Classify the candidate files (explicit or found with --auto) into targets,
inlineable files and ignored files without merging anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newWorkflow(cmd, globalLogger).List(cmd.Context(), planArgsFromConfig(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
