package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display
// using the default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return RenderScreenWith(lipgloss.DefaultRenderer(), s)
}

// RenderScreenWith converts a Screen buffer using the given renderer, so
// writers other than stdout get styles matching their color profile.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreenWith(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(c core.Color) lipgloss.Style {
		if st, ok := styles[c]; ok {
			return st
		}
		st := r.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
