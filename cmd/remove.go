package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mj1618/yman/internal/output"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a stored session",
	Long: `Delete a stored session after asking for confirmation. Answering
anything but y or yes aborts with a non-zero exit.

Examples:
  yman remove work
  yman remove work --yes`,
	Aliases:           []string{"rm"},
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeSessionNames,
	RunE:              runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	ask := func(prompt string) (bool, error) {
		if yes {
			return true, nil
		}
		return confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
	}

	result, err := state.RemoveSession(commandContext(cmd), args[0], ask)
	if err != nil {
		return err
	}
	return output.Print(result)
}

// confirm writes prompt to out and reads a y/N answer from in. Anything but
// y or yes, including end of input, is a no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
