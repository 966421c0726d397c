package floodit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

// Mode selects which tile attribute is shown and picked.
// It is chosen once per session.
type Mode string

const (
	ModeShapes Mode = "shapes"
	ModeColors Mode = "colors"
	ModeBoth   Mode = "both"
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeShapes, ModeColors, ModeBoth}
}

// Letter returns the startup key for the mode.
func (m Mode) Letter() rune {
	switch m {
	case ModeShapes:
		return 'S'
	case ModeColors:
		return 'C'
	default:
		return 'B'
	}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeShapes:
		return "Shapes"
	case ModeColors:
		return "Colors"
	case ModeBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// ShowsShapes reports whether glyphs are drawn for this mode.
func (m Mode) ShowsShapes() bool {
	return m == ModeShapes || m == ModeBoth
}

// ShowsColors reports whether tiles are colored for this mode.
func (m Mode) ShowsColors() bool {
	return m == ModeColors || m == ModeBoth
}

// PicksColors reports whether turns are chosen by color letter.
// Both mode picks by shape; the paired color follows.
func (m Mode) PicksColors() bool {
	return m == ModeColors
}

// Startup dialogue text.
const (
	ModePrompt  = "Choose your mode: [S]hapes, [C]olors, or [B]oth:"
	InvalidMode = "Invalid entry. Please try again."
)

// ModeOptions returns the startup choices in menu order.
func ModeOptions() []core.Option {
	opts := make([]core.Option, 0, len(Modes()))
	for _, m := range Modes() {
		opts = append(opts, core.Option{Key: m.Letter(), Label: m.Title()})
	}
	return opts
}

var (
	// ErrInvalidMove is returned for input outside the mode's letter set.
	ErrInvalidMove = errors.New("floodit: invalid move")
	// ErrInvalidMode is returned for an unknown mode letter or name.
	ErrInvalidMode = errors.New("floodit: invalid mode")
	// ErrQuit is returned when the player asks to quit.
	ErrQuit = errors.New("floodit: quit")
)

// ParseMode accepts S, C or B (any case) or the mode name.
func ParseMode(input string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "s", "shapes", "shape":
		return ModeShapes, nil
	case "c", "colors", "color":
		return ModeColors, nil
	case "b", "both":
		return ModeBoth, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, input)
}

// Move is one player choice: a color in color mode, a shape otherwise.
type Move struct {
	ByColor bool
	Color   Color
	Shape   Shape
}

// ColorMove returns a move that fills by color.
func ColorMove(c Color) Move {
	return Move{ByColor: true, Color: c}
}

// ShapeMove returns a move that fills by shape.
func ShapeMove(s Shape) Move {
	return Move{Shape: s}
}

// Tile returns the canonical tile the move paints.
func (m Move) Tile() Tile {
	if m.ByColor {
		return TileForColor(m.Color)
	}
	return TileForShape(m.Shape)
}

// String returns the name of the chosen color or shape.
func (m Move) String() string {
	if m.ByColor {
		return m.Color.String()
	}
	return m.Shape.String()
}

// quitLetter always ends the session, whatever the mode.
const quitLetter = 'Q'

// Options returns the letters a player may enter in the given mode.
func Options(mode Mode) []core.Option {
	opts := make([]core.Option, 0, NumKinds+1)
	for _, t := range Tiles() {
		if mode.PicksColors() {
			opts = append(opts, core.Option{Key: t.Color.Letter(), Label: t.Color.String()})
		} else {
			opts = append(opts, core.Option{Key: t.Shape.Letter(), Label: t.Shape.String()})
		}
	}
	return append(opts, core.Option{Key: quitLetter, Label: "Quit"})
}

// ParseMove converts one case-insensitive letter into a Move.
// Q yields ErrQuit; anything outside the mode's set yields ErrInvalidMove.
func ParseMove(mode Mode, input string) (Move, error) {
	r, ok := core.MatchOption(Options(mode), strings.TrimSpace(input))
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, input)
	}
	return moveForLetter(mode, r)
}

// moveForLetter maps an already validated upper-case letter.
func moveForLetter(mode Mode, r rune) (Move, error) {
	if r == quitLetter {
		return Move{}, ErrQuit
	}
	for i := range NumKinds {
		if mode.PicksColors() && Color(i).Letter() == r {
			return ColorMove(Color(i)), nil
		}
		if !mode.PicksColors() && Shape(i).Letter() == r {
			return ShapeMove(Shape(i)), nil
		}
	}
	return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, string(r))
}

// Prompt returns the per-turn prompt line for the mode.
func Prompt(mode Mode) string {
	if mode.PicksColors() {
		return "Choose one of the following [R]ed, [G]reen, [B]lue, [Y]ellow, [C]yan, [M]agenta, or [Q]uit:"
	}
	return "Choose one of the following [H]eart, [T]riangle, [D]iamond, [B]all, [C]lub, [S]pade, or [Q]uit:"
}
