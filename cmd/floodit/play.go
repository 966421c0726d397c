package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-floodit/internal/core"
	"github.com/vovakirdan/tui-floodit/internal/games/floodit"
	"github.com/vovakirdan/tui-floodit/internal/platform/tui"
	"github.com/vovakirdan/tui-floodit/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the full-screen terminal UI",
	Long: `Start a game in the full-screen terminal UI. Without a mode argument
a mode selector is shown first.

Controls:
  Colors mode       R G B Y C M  - Fill with a color
  Shapes/Both mode  H T D B C S  - Fill with a shape
  Q/Esc/Ctrl+C                   - Quit

Examples:
  floodit play
  floodit play colors
  floodit play both --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode, ok, err := modeFromArgs(args)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := applyTheme(logger); err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed

	// Get terminal size early for mode selector
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if !ok {
		choice, updatedCfg, selErr := tui.RunModeSelector(floodit.ModePrompt, floodit.InvalidMode, floodit.ModeOptions(), cfg)
		if selErr != nil {
			return selErr
		}
		cfg = updatedCfg

		// User quit the selector
		if choice == 0 {
			return nil
		}
		if mode, err = floodit.ParseMode(string(choice)); err != nil {
			return err
		}
	}

	game, err := registry.Create(string(mode))
	if err != nil {
		return err
	}

	state, err := tui.Run(game, cfg, logger)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	// The alternate screen is gone; repeat the outcome on the main screen
	if state.GameOver {
		fmt.Fprintln(cmd.OutOrStdout(), game.EndMessage())
	}
	return nil
}
