package floodit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-floodit/internal/config"
	"github.com/vovakirdan/tui-floodit/internal/core"
	"github.com/vovakirdan/tui-floodit/internal/registry"
)

// Game adapts a Session to the platform: it turns validated input frames
// into moves and draws the board into a core.Screen.
type Game struct {
	mode    Mode
	theme   config.ThemeConfig
	session *Session

	turn          int    // Moves played so far
	lastMove      string // Name of the last choice, empty before the first move
	lastConverted int    // Cells changed by the last move
	lastTile      Tile   // Tile the last move filled with

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level theme applied to games created after SetTheme.
var selectedTheme = config.DefaultTheme()

// SetTheme sets the theme used by subsequently reset games.
func SetTheme(theme config.ThemeConfig) {
	selectedTheme = theme
}

// New creates a game in the given display mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	for _, mode := range Modes() {
		registry.Register(string(mode), func() registry.Game {
			return New(mode)
		})
	}
}

// ID returns the game identifier, which is the mode name.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Flood-It (%s)", g.mode.Title())
}

// Reset starts a new session on a board generated from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	g.session = NewSession(g.mode, rng)
	g.theme = selectedTheme
	g.turn = 0
	g.lastMove = ""
	g.lastConverted = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < CanvasW || h < CanvasH
}

// Options returns the letters accepted on each turn.
func (g *Game) Options() []core.Option {
	return Options(g.mode)
}

// Prompt returns the per-turn prompt text.
func (g *Game) Prompt() string {
	return Prompt(g.mode)
}

// Session returns the running session, nil before Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Step plays one turn. Choices must already be validated against Options.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Status().Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.session.Quit()
		return core.StepResult{State: g.State()}
	}

	if !in.Has(core.ActionSelect) || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	move, err := ParseMove(g.mode, string(in.Choice))
	if errors.Is(err, ErrQuit) {
		g.session.Quit()
		return core.StepResult{State: g.State()}
	}
	if err != nil {
		panic(fmt.Sprintf("floodit: unvalidated choice reached the game: %v", err))
	}

	converted := g.session.Play(move)
	g.turn++
	g.lastMove = move.String()
	g.lastConverted = converted
	g.lastTile = move.Tile()

	return core.StepResult{State: g.State(), Converted: converted}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{MovesLeft: MoveLimit}
	}
	status := g.session.Status()
	return core.GameState{
		MovesLeft: g.session.MovesLeft(),
		GameOver:  status.Over(),
		Won:       status == StatusWon,
		Paused:    g.tooSmall,
	}
}
