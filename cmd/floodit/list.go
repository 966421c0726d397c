package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodit/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the display modes",
	Long:  `Shows every registered display mode with its title.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'floodit play <id>' to play a mode.")
}
