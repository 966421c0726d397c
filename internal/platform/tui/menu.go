package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

const selectorTitle = "F L O O D - I T"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectorStyle = lipgloss.NewStyle().Padding(1, 4).Border(lipgloss.RoundedBorder())
)

// ModeSelector is the Bubble Tea model for the startup mode prompt.
// A mode is picked either by its letter or with the arrows and Enter.
type ModeSelector struct {
	prompt   string
	invalid  string
	options  []core.Option
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     menuKeys
	help     help.Model
	rejected bool
	quitting bool
	selected rune
}

// NewModeSelector creates a selector over the given options. The invalid
// text is shown after a letter that matches no option.
func NewModeSelector(prompt, invalid string, opts []core.Option, cfg core.RuntimeConfig) ModeSelector {
	return ModeSelector{
		prompt:  prompt,
		invalid: invalid,
		options: opts,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    newMenuKeys(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m ModeSelector) Init() tea.Cmd {
	return nil
}

// Update handles messages for the selector.
func (m ModeSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for the selector.
func (m ModeSelector) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Letters win over navigation so that every option stays reachable
	if r, ok := core.MatchOption(m.options, msg.String()); ok {
		m.selected = r
		return m, tea.Quit
	}

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.rejected = false
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		m.rejected = false
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.options) > 0 {
			m.selected = m.options[m.cursor].Key
			return m, tea.Quit
		}

	default:
		if msg.Type == tea.KeyRunes {
			m.rejected = true
		}
	}

	return m, nil
}

// View renders the selector.
func (m ModeSelector) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(selectorTitle))
	b.WriteString("\n\n")
	b.WriteString(m.prompt)
	b.WriteString("\n\n")

	for i, o := range m.options {
		cursor := "  "
		line := fmt.Sprintf("[%c] %s", o.Key, o.Label)
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	if m.rejected {
		b.WriteString(warningStyle.Render(m.invalid))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, selectorStyle.Render(b.String()))
}

// Selected returns the chosen option key, or 0 if none was chosen.
func (m ModeSelector) Selected() rune {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m ModeSelector) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m ModeSelector) Config() core.RuntimeConfig {
	return m.config
}

// RunModeSelector shows the selector and returns the chosen key, or 0 when
// the player quits, along with the config updated by any resize.
func RunModeSelector(prompt, invalid string, opts []core.Option, cfg core.RuntimeConfig) (rune, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewModeSelector(prompt, invalid, opts, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, cfg, fmt.Errorf("mode selector: %w", err)
	}

	choice, updated := selectorResult(final.(ModeSelector))
	return choice, updated, nil
}

// selectorResult reads the outcome of a finished selector.
func selectorResult(m ModeSelector) (rune, core.RuntimeConfig) {
	if m.IsQuitting() {
		return 0, m.Config()
	}
	return m.Selected(), m.Config()
}
