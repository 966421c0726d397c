// Package tui provides the Bubble Tea integration for flood-it.
// It handles the terminal UI loop, key mapping and the mode selector.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-floodit/internal/core"
	"github.com/vovakirdan/tui-floodit/internal/registry"
)

var (
	promptStyle  = lipgloss.NewStyle().Bold(true)
	outcomeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Model is the Bubble Tea model for a running game.
// Each bound key press is one turn; there is no tick loop.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState
	quitting  bool
}

// NewModel creates a model and starts a fresh session of the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      NewKeyMap(game.Options()),
		help:      help.New(),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey plays one turn for a bound key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key leaves the final board
	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}

	frame := core.NewInputFrame()
	if !m.keys.MapKeyToFrame(msg, &frame) {
		return m, nil
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionSelect) && !m.gameState.Paused {
		m.logger.Info("move",
			"choice", string(frame.Choice),
			"converted", result.Converted,
			"moves_left", result.State.MovesLeft,
		)
	}
	if m.gameState.GameOver {
		m.logger.Info("session ended",
			"won", m.gameState.Won,
			"moves_left", m.gameState.MovesLeft,
			"message", m.game.EndMessage(),
		)
	}

	return m, nil
}

// handleResize processes window resize events. The session survives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.game.Resize(msg.Width, msg.Height)
	m.gameState = m.game.State()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.gameState.Paused {
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}

	w, h := m.game.CanvasSize()
	m.screen.Resize(w, h)
	m.game.Render(m.screen)

	footer := promptStyle.Render(m.game.Prompt()) + "\n" + m.help.View(m.keys)
	if m.gameState.GameOver {
		footer = outcomeStyle.Render("Press any key to exit")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), footer)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game and returns the
// final state once the player leaves.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	return final.(Model).State(), nil
}
