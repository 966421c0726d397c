package floodit

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Turn       int
	Mode       string
	MovesLeft  int
	RegionSize int // Cells connected to the origin
	Board      [Rows][Cols]Tile
	State      Status
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	b := g.session.Board()
	return Snapshot{
		Turn:       g.turn,
		Mode:       string(g.mode),
		MovesLeft:  g.session.MovesLeft(),
		RegionSize: len(b.Region()),
		Board:      b.Cells(),
		State:      g.session.Status(),
	}
}
