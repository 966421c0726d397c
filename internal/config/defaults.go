package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultTheme returns the built-in theme: card-suit glyphs on the six
// basic ANSI colors.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Glyphs: GlyphConfig{
			Heart:    "♥",
			Triangle: "▲",
			Diamond:  "♦",
			Ball:     "●",
			Club:     "♣",
			Spade:    "♠",
			Block:    "█",
		},
		Palette: PaletteConfig{
			Red:     "red",
			Green:   "green",
			Blue:    "blue",
			Yellow:  "yellow",
			Cyan:    "cyan",
			Magenta: "magenta",
			Frame:   "white",
		},
		Border: BorderConfig{
			OriginMarker: ">",
		},
	}
}

// DefaultThemeYAML returns the embedded default theme file.
func DefaultThemeYAML() []byte {
	return defaultThemeYAML
}
