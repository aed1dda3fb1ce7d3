package cmd

import (
	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store <name>",
	Short: "Store the open tabs under a name",
	Long: `Capture every open tab (title, working directory, foreground command and
the environment variables that differ from yman's own) and save them as a
named session. An existing session is never overwritten.

By default the tab yman is running in is left out; use --keep to include it.
Its command is never recorded.

Examples:
  yman store work
  yman store work --keep`,
	Args: cobra.ExactArgs(1),
	RunE: runStore,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.Flags().Bool("skip", true, "Leave out the current tab (default)")
	storeCmd.Flags().Bool("keep", false, "Include the current tab")
	storeCmd.MarkFlagsMutuallyExclusive("skip", "keep")
}

func runStore(cmd *cobra.Command, args []string) error {
	skip, _ := cmd.Flags().GetBool("skip")
	keep, _ := cmd.Flags().GetBool("keep")

	result, err := state.StoreSession(commandContext(cmd), args[0], skip && !keep)
	if err != nil {
		return err
	}
	return output.Print(result)
}
