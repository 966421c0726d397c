// Package config provides YAML-based theme configuration for floodit.
// Only presentation is configurable; the grid size and move budget are fixed.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

// ThemeConfig controls how tiles and the board frame are drawn.
type ThemeConfig struct {
	Glyphs  GlyphConfig   `yaml:"glyphs"`
	Palette PaletteConfig `yaml:"palette"`
	Border  BorderConfig  `yaml:"border"`
}

// GlyphConfig holds one single-rune glyph per shape.
type GlyphConfig struct {
	Heart    string `yaml:"heart"`
	Triangle string `yaml:"triangle"`
	Diamond  string `yaml:"diamond"`
	Ball     string `yaml:"ball"`
	Club     string `yaml:"club"`
	Spade    string `yaml:"spade"`
	Block    string `yaml:"block"` // Drawn when shapes are hidden
}

// PaletteConfig maps each tile color to a terminal color name.
type PaletteConfig struct {
	Red     string `yaml:"red"`
	Green   string `yaml:"green"`
	Blue    string `yaml:"blue"`
	Yellow  string `yaml:"yellow"`
	Cyan    string `yaml:"cyan"`
	Magenta string `yaml:"magenta"`
	Frame   string `yaml:"frame"` // Border and HUD color
}

// BorderConfig defines frame decorations.
type BorderConfig struct {
	OriginMarker string `yaml:"origin_marker"` // Replaces the left border on the origin row
}

// ShapeGlyphs returns the glyphs in shape order
// (heart, triangle, diamond, ball, club, spade).
func (t ThemeConfig) ShapeGlyphs() [6]rune {
	g := t.Glyphs
	return [6]rune{
		firstRune(g.Heart),
		firstRune(g.Triangle),
		firstRune(g.Diamond),
		firstRune(g.Ball),
		firstRune(g.Club),
		firstRune(g.Spade),
	}
}

// BlockGlyph returns the glyph drawn when shapes are hidden.
func (t ThemeConfig) BlockGlyph() rune {
	return firstRune(t.Glyphs.Block)
}

// OriginMarker returns the rune marking the origin row.
func (t ThemeConfig) OriginMarker() rune {
	return firstRune(t.Border.OriginMarker)
}

// TileColors returns the screen colors in tile color order
// (red, green, blue, yellow, cyan, magenta).
// Unknown names fall back to the terminal default; Validate reports them.
func (t ThemeConfig) TileColors() [6]core.Color {
	p := t.Palette
	return [6]core.Color{
		parseOrDefault(p.Red),
		parseOrDefault(p.Green),
		parseOrDefault(p.Blue),
		parseOrDefault(p.Yellow),
		parseOrDefault(p.Cyan),
		parseOrDefault(p.Magenta),
	}
}

// FrameColor returns the color used for the border and HUD text.
func (t ThemeConfig) FrameColor() core.Color {
	return parseOrDefault(t.Palette.Frame)
}

// Validate checks that every glyph is a single rune and every palette
// entry names a known color.
func (t ThemeConfig) Validate() error {
	glyphs := map[string]string{
		"glyphs.heart":         t.Glyphs.Heart,
		"glyphs.triangle":      t.Glyphs.Triangle,
		"glyphs.diamond":       t.Glyphs.Diamond,
		"glyphs.ball":          t.Glyphs.Ball,
		"glyphs.club":          t.Glyphs.Club,
		"glyphs.spade":         t.Glyphs.Spade,
		"glyphs.block":         t.Glyphs.Block,
		"border.origin_marker": t.Border.OriginMarker,
	}
	for field, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", field, g)
		}
	}

	colors := map[string]string{
		"palette.red":     t.Palette.Red,
		"palette.green":   t.Palette.Green,
		"palette.blue":    t.Palette.Blue,
		"palette.yellow":  t.Palette.Yellow,
		"palette.cyan":    t.Palette.Cyan,
		"palette.magenta": t.Palette.Magenta,
		"palette.frame":   t.Palette.Frame,
	}
	for field, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: %s has unknown color %q", field, name)
		}
	}

	return nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

func parseOrDefault(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
