// floodit is a terminal flood-it puzzle: fill the board with a single
// color or shape, starting from the top-left corner, within 20 moves.
//
// Usage:
//
//	floodit play [mode]      - Play in the full-screen TUI
//	floodit plain [mode]     - Play as a line-based prompt dialogue
//	floodit list             - List the display modes
//	floodit keys [mode]      - Show the letters accepted in each mode
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible board
//	--config <path>      - Theme YAML (glyphs and palette)
//	--log-file <path>    - Write logs to a file (discarded by default)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodit/internal/config"
	"github.com/vovakirdan/tui-floodit/internal/games/floodit"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floodit",
	Short: "Flood-It - fill the board from the top-left corner",
	Long: `Flood-It is a terminal puzzle. Every move recolors (or reshapes) the
region connected to the top-left tile; unify the whole board within
20 moves to win.

Modes:
  shapes  - Tiles show shapes only, moves pick a shape
  colors  - Tiles show colors only, moves pick a color
  both    - Tiles show both, moves pick a shape

Examples:
  floodit play
  floodit play colors --seed 42
  floodit plain shapes
  floodit keys both`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom theme YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(keysCmd)
}

// newLogger opens the log destination. The returned cleanup must be called
// when the command finishes.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	cleanup := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close of an append-only log
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "floodit",
		Level:           level,
	})
	return logger, cleanup, nil
}

// applyTheme loads the theme from --config or the search path and makes it
// the theme of every game created afterwards.
func applyTheme(logger *log.Logger) error {
	theme, err := config.LoadTheme(flagConfig)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	floodit.SetTheme(theme)
	logger.Debug("theme loaded", "path", flagConfig)
	return nil
}

// modeFromArgs parses an optional mode argument; ok is false when absent.
func modeFromArgs(args []string) (mode floodit.Mode, ok bool, err error) {
	if len(args) == 0 {
		return "", false, nil
	}
	mode, err = floodit.ParseMode(args[0])
	if err != nil {
		return "", false, fmt.Errorf("%w (run 'floodit list' to see modes)", err)
	}
	return mode, true, nil
}
