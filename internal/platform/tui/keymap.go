package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

// KeyMap translates Bubble Tea key messages to game input.
// Letter bindings are built from the options a game offers, so the same
// map serves every mode and doubles as the help line.
type KeyMap struct {
	Choices []key.Binding
	Quit    key.Binding

	options []core.Option
}

// NewKeyMap creates a key map with one binding per option.
func NewKeyMap(opts []core.Option) KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		options: opts,
	}

	for _, o := range opts {
		lower := strings.ToLower(string(o.Key))
		km.Choices = append(km.Choices, key.NewBinding(
			key.WithKeys(lower, string(o.Key)),
			key.WithHelp(lower, strings.ToLower(o.Label)),
		))
	}

	return km
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns false if the key is not bound, leaving the frame untouched.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, km.Quit) {
		frame.Set(core.ActionQuit)
		return true
	}

	choice, ok := core.MatchOption(km.options, msg.String())
	if !ok {
		return false
	}
	frame.Select(choice)
	return true
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, km.Choices...), km.Quit)
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.Choices, {km.Quit}}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// menuKeys are the navigation bindings of the mode selector.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc", "q"), key.WithHelp("q", "quit")),
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (mk menuKeys) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, mk.Quit):
		return MenuActionQuit
	case key.Matches(msg, mk.Up):
		return MenuActionUp
	case key.Matches(msg, mk.Down):
		return MenuActionDown
	case key.Matches(msg, mk.Select):
		return MenuActionSelect
	}
	return MenuActionNone
}

func (mk menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{mk.Up, mk.Down, mk.Select, mk.Quit}
}

func (mk menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{mk.ShortHelp()}
}
