package cmd

import (
	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Reopen the tabs of a stored session",
	Long: `Open one new tab per stored tab, in their original order. Each tab gets
its title back, then the shell is sent the directory change, the environment
exports and the command. Focus returns to the tab that was active before.

Examples:
  yman restore work
  yman restore work --clear`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSessionNames,
	RunE:              runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().Bool("clear", false, "Clear each terminal after setup (default from clear_after_restore)")
}

func runRestore(cmd *cobra.Command, args []string) error {
	clearAfter := state.Config().ClearAfterRestore
	if cmd.Flags().Changed("clear") {
		clearAfter, _ = cmd.Flags().GetBool("clear")
	}

	result, err := state.RestoreSession(commandContext(cmd), args[0], clearAfter)
	if err != nil {
		return err
	}
	return output.Print(result)
}
