package core

import "unicode"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionSelect        // A validated letter choice (color or shape)
	ActionQuit          // Q, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Option is one selectable letter offered to the player for a turn.
type Option struct {
	Key   rune   // Upper-case letter, e.g. 'R'
	Label string // Display name, e.g. "Red"
}

// MatchOption reports whether input is a single letter present in opts.
// Matching is case-insensitive; the returned rune is upper-case.
func MatchOption(opts []Option, input string) (rune, bool) {
	runes := []rune(input)
	if len(runes) != 1 {
		return 0, false
	}
	r := unicode.ToUpper(runes[0])
	for _, o := range opts {
		if o.Key == r {
			return r, true
		}
	}
	return 0, false
}

// InputFrame is the input delivered to a game for a single turn.
// Choice is only meaningful when ActionSelect is set, and adapters
// only set it after validating it against the game's options.
type InputFrame struct {
	Actions map[Action]bool
	Choice  rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Select marks the frame as carrying a validated choice.
func (f *InputFrame) Select(choice rune) {
	f.Set(ActionSelect)
	f.Choice = choice
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the frame for the next turn.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Choice = 0
}
