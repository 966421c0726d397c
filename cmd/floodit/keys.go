package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodit/internal/games/floodit"
)

var keysCmd = &cobra.Command{
	Use:   "keys [mode]",
	Short: "Show the letters accepted in each mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	modes := floodit.Modes()
	if mode, ok, err := modeFromArgs(args); err != nil {
		return err
	} else if ok {
		modes = []floodit.Mode{mode}
	}

	out := cmd.OutOrStdout()
	for i, mode := range modes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s:\n", mode.Title())
		for _, o := range floodit.Options(mode) {
			fmt.Fprintf(out, "  %c  %s\n", o.Key, o.Label)
		}
	}
	return nil
}
