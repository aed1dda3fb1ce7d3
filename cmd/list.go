package cmd

import (
	"fmt"

	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sessions",
	Long:  "List the names of all stored sessions in alphabetical order.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("plain", false, "Print one name per line")
}

func runList(cmd *cobra.Command, args []string) error {
	result, err := state.ListSessions(commandContext(cmd))
	if err != nil {
		return err
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		for _, name := range result.Sessions {
			if _, err := fmt.Fprintln(output.Stdout, name); err != nil {
				return err
			}
		}
		return nil
	}
	return output.Print(result)
}
