package cmd

import (
	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Show the tabs of a stored session",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSessionNames,
	RunE:              runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	result, err := state.ShowSession(commandContext(cmd), args[0])
	if err != nil {
		return err
	}
	return output.Print(result)
}
