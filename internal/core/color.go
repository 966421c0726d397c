package core

import "strings"

// Color represents a foreground color for a screen cell.
// Values map onto the 16 basic ANSI colors in the platform renderers.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"gray":           ColorGray,
}

// ParseColor converts a palette name such as "red" or "bright_cyan" to a Color.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ANSI returns the ANSI color code used by lipgloss and termenv.
// ColorDefault returns an empty string (terminal default foreground).
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
