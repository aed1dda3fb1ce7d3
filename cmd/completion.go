package cmd

import (
	"github.com/spf13/cobra"
)

// completeSessionNames completes the first argument with stored session
// names.
func completeSessionNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc := state
	if svc == nil {
		var err error
		if svc, err = loadService(commandContext(cmd)); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return svc.CompleteNames(commandContext(cmd), toComplete), cobra.ShellCompDirectiveNoFileComp
}
