// Package prompt runs a game as a line-based dialogue on plain reader and
// writer streams: a startup prompt, a redraw before every turn and a
// reprompt whenever a line is not one of the offered letters.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-floodit/internal/core"
	"github.com/vovakirdan/tui-floodit/internal/platform/tui"
	"github.com/vovakirdan/tui-floodit/internal/registry"
)

// InvalidSelection is printed when a turn's input is not an offered letter.
const InvalidSelection = "Invalid selection, please try again."

// ErrInputClosed is returned when the input ends before a choice is made.
var ErrInputClosed = errors.New("prompt: input closed")

// Runner drives games over line-based input and output.
type Runner struct {
	in       *bufio.Reader
	out      *termenv.Output
	renderer *lipgloss.Renderer
	logger   *log.Logger
	warning  lipgloss.Style
}

// New creates a runner. A nil logger discards log output.
func New(in io.Reader, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := lipgloss.NewRenderer(out)
	return &Runner{
		in:       bufio.NewReader(in),
		out:      termenv.NewOutput(out),
		renderer: renderer,
		logger:   logger,
		warning:  renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Choose prints prompt once and reads lines of any length until one
// matches an option, printing invalid after each rejected line.
func (r *Runner) Choose(prompt, invalid string, opts []core.Option) (rune, error) {
	fmt.Fprintln(r.out, prompt)

	for {
		line, err := r.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("prompt: read input: %w", err)
		}
		if err != nil && line == "" {
			return 0, ErrInputClosed
		}

		line = strings.TrimSpace(line)
		if choice, ok := core.MatchOption(opts, line); ok {
			return choice, nil
		}
		r.logger.Debug("rejected input", "length", len(line))
		fmt.Fprintln(r.out, r.warning.Render(invalid))
	}
}

// Play runs game turns until the session ends. The game must already be
// reset. Closing the input quits the session.
func (r *Runner) Play(game registry.Game) error {
	w, h := game.CanvasSize()
	game.Resize(w, h)
	screen := core.NewScreen(w, h)

	r.out.HideCursor()
	defer r.out.ShowCursor()

	for {
		r.redraw(game, screen)

		state := game.State()
		if state.GameOver {
			r.logger.Info("session ended",
				"won", state.Won,
				"moves_left", state.MovesLeft,
				"message", game.EndMessage(),
			)
			return nil
		}

		frame := core.NewInputFrame()
		choice, err := r.Choose(game.Prompt(), InvalidSelection, game.Options())
		switch {
		case errors.Is(err, ErrInputClosed):
			frame.Set(core.ActionQuit)
		case err != nil:
			return err
		default:
			frame.Select(choice)
		}

		result := game.Step(frame)
		if frame.Has(core.ActionSelect) {
			r.logger.Info("move",
				"choice", string(choice),
				"converted", result.Converted,
				"moves_left", result.State.MovesLeft,
			)
		}
	}
}

// redraw clears the terminal and draws the current game screen.
func (r *Runner) redraw(game registry.Game, screen *core.Screen) {
	r.out.ClearScreen()
	r.out.MoveCursor(1, 1)

	game.Render(screen)
	fmt.Fprintln(r.out, tui.RenderScreenWith(r.renderer, screen))
}
