package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

var modeOptions = []core.Option{
	{Key: 'S', Label: "Shapes"},
	{Key: 'C', Label: "Colors"},
	{Key: 'B', Label: "Both"},
}

const invalidEntry = "Invalid entry. Please try again."

func newTestSelector() ModeSelector {
	return NewModeSelector("Choose your mode:", invalidEntry, modeOptions, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
}

func selectorUpdate(m ModeSelector, msg tea.Msg) (ModeSelector, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ModeSelector), cmd
}

func TestModeSelectorLetter(t *testing.T) {
	m, cmd := selectorUpdate(newTestSelector(), runeKey('c'))

	if cmd == nil || m.Selected() != 'C' {
		t.Errorf("Selected() = %q, expected 'C'", m.Selected())
	}
}

func TestModeSelectorArrows(t *testing.T) {
	m := newTestSelector()
	m, _ = selectorUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = selectorUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = selectorUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = selectorUpdate(m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := selectorUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil || m.Selected() != 'C' {
		t.Errorf("Selected() = %q, expected 'C'", m.Selected())
	}
}

func TestModeSelectorInvalidLetter(t *testing.T) {
	m, cmd := selectorUpdate(newTestSelector(), runeKey('x'))

	if cmd != nil || m.Selected() != 0 {
		t.Error("invalid letter should not select")
	}
	if !strings.Contains(m.View(), invalidEntry) {
		t.Error("expected invalid entry message")
	}
}

func TestModeSelectorQuit(t *testing.T) {
	m, cmd := selectorUpdate(newTestSelector(), tea.KeyMsg{Type: tea.KeyEsc})

	if cmd == nil || !m.IsQuitting() || m.Selected() != 0 {
		t.Error("esc should quit without a selection")
	}
}

func TestModeSelectorResize(t *testing.T) {
	m, _ := selectorUpdate(newTestSelector(), tea.WindowSizeMsg{Width: 100, Height: 40})

	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v", cfg)
	}
}

func TestSelectorResult(t *testing.T) {
	picked, _ := selectorUpdate(newTestSelector(), runeKey('s'))
	if choice, _ := selectorResult(picked); choice != 'S' {
		t.Errorf("selectorResult() = %q, expected 'S'", choice)
	}

	quit, _ := selectorUpdate(newTestSelector(), tea.WindowSizeMsg{Width: 90, Height: 30})
	quit, _ = selectorUpdate(quit, runeKey('q'))
	choice, cfg := selectorResult(quit)
	if choice != 0 {
		t.Errorf("selectorResult() = %q after quit, expected none", choice)
	}
	if cfg.ScreenW != 90 || cfg.ScreenH != 30 {
		t.Errorf("config = %+v, expected resized screen", cfg)
	}
}
