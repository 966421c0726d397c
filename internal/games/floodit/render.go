package floodit

import (
	"fmt"

	"github.com/vovakirdan/tui-floodit/internal/core"
)

// Canvas size needed to draw the board, the move counter and messages.
const (
	CanvasW = 32
	CanvasH = Rows + 2 + 4
)

// Text rows below the board frame.
const (
	countsRow  = Rows + 2
	movesRow   = Rows + 3
	lastRow    = Rows + 4
	messageRow = Rows + 5
)

// End-of-game messages.
const (
	WinMessage  = "You have won!!!"
	LossMessage = "You have run out of moves :("
	QuitMessage = "Goodbye!"
)

// CanvasSize returns the area needed for the board and status lines.
func (g *Game) CanvasSize() (w, h int) {
	return CanvasW, CanvasH
}

// Render draws the board and status lines at the top-left of dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderBoard(dst)
	g.renderCounts(dst)
	g.renderStatus(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the frame, the origin marker and every tile.
func (g *Game) renderBoard(dst *core.Screen) {
	frame := g.theme.FrameColor()

	// Frame
	dst.DrawBox(core.NewRect(0, 0, Cols+2, Rows+2), frame)
	dst.SetColored(0, OriginCoord.Y+1, g.theme.OriginMarker(), frame)

	// Tiles
	cells := g.session.Board().Cells()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			glyph, color := g.tileLook(cells[y][x])
			dst.SetColored(x+1, y+1, glyph, color)
		}
	}
}

// tileLook returns the glyph and color a tile is drawn with in this mode.
// Hidden attributes fall back to the block glyph and the frame color.
func (g *Game) tileLook(t Tile) (rune, core.Color) {
	glyph := g.theme.BlockGlyph()
	if g.mode.ShowsShapes() {
		glyph = g.theme.ShapeGlyphs()[t.Shape]
	}
	color := g.theme.FrameColor()
	if g.mode.ShowsColors() {
		color = g.theme.TileColors()[t.Color]
	}
	return glyph, color
}

// renderCounts draws how many cells each tile kind covers.
func (g *Game) renderCounts(dst *core.Screen) {
	counts := g.session.Board().Counts()
	x := 0
	for i, t := range Tiles() {
		glyph, color := g.tileLook(t)
		dst.SetColored(x, countsRow, glyph, color)
		dst.DrawTextColored(x+1, countsRow, fmt.Sprintf("%-3d", counts[i]), g.theme.FrameColor())
		x += 5
	}
}

// renderStatus draws the move counter, the last move and the end message.
func (g *Game) renderStatus(dst *core.Screen) {
	frame := g.theme.FrameColor()

	dst.DrawTextColored(0, movesRow, fmt.Sprintf("Moves left: %d", g.session.MovesLeft()), frame)

	if g.lastMove != "" {
		prefix := fmt.Sprintf("Move %d: ", g.turn)
		dst.DrawTextColored(0, lastRow, prefix, frame)
		glyph, color := g.tileLook(g.lastTile)
		dst.SetColored(len(prefix), lastRow, glyph, color)
		dst.DrawTextColored(len(prefix)+2, lastRow, fmt.Sprintf("%s (+%d)", g.lastMove, g.lastConverted), frame)
	}

	if msg := g.EndMessage(); msg != "" {
		dst.DrawTextColored(0, messageRow, msg, frame)
	}
}

// EndMessage returns the message for a finished session, or "" while playing.
func (g *Game) EndMessage() string {
	switch g.session.Status() {
	case StatusWon:
		return WinMessage
	case StatusLost:
		return LossMessage
	case StatusQuit:
		return QuitMessage
	default:
		return ""
	}
}
