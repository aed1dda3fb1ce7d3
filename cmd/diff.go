package cmd

import (
	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <name>",
	Short: "Compare a stored session with the open tabs",
	Long: `Capture the open tabs the same way store does, without saving them, and
list the tabs that were added, removed or changed since the session was
stored. Tabs are matched by position.

Idle shells receive the same short probe command as during store.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSessionNames,
	RunE:              runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("keep", false, "Include the current tab")
}

func runDiff(cmd *cobra.Command, args []string) error {
	keep, _ := cmd.Flags().GetBool("keep")

	result, err := state.DiffSession(commandContext(cmd), args[0], !keep)
	if err != nil {
		return err
	}
	return output.Print(result)
}
