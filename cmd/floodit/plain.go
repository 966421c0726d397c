package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-floodit/internal/core"
	"github.com/vovakirdan/tui-floodit/internal/games/floodit"
	"github.com/vovakirdan/tui-floodit/internal/platform/prompt"
	"github.com/vovakirdan/tui-floodit/internal/registry"
)

var plainCmd = &cobra.Command{
	Use:   "plain [mode]",
	Short: "Play as a line-based prompt dialogue",
	Long: `Play by typing one letter per line, as in a classic terminal program.
The board is redrawn before every turn. Without a mode argument the mode
is asked for first.

Examples:
  floodit plain
  floodit plain shapes
  echo "s" | floodit plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlain,
}

func runPlain(cmd *cobra.Command, args []string) error {
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

	runner := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	if !ok {
		choice, chooseErr := runner.Choose(floodit.ModePrompt, floodit.InvalidMode, floodit.ModeOptions())
		if errors.Is(chooseErr, prompt.ErrInputClosed) {
			return nil
		}
		if chooseErr != nil {
			return chooseErr
		}
		if mode, err = floodit.ParseMode(string(choice)); err != nil {
			return err
		}
	}

	game, err := registry.Create(string(mode))
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := game.CanvasSize()
	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
	logger.Info("session started", "game", game.ID(), "seed", seed)

	return runner.Play(game)
}
