package floodit

import (
	"math/rand"
	"testing"
)

// cornerBoard is uniform except for the far corner.
func cornerBoard(fill, corner Tile) *Board {
	b := NewUniformBoard(fill)
	b.Set(C(Width, Height), corner)
	return b
}

func TestNewSession(t *testing.T) {
	s := NewSession(ModeColors, rand.New(rand.NewSource(1)))

	if s.MovesLeft() != MoveLimit || MoveLimit != 20 {
		t.Errorf("MovesLeft() = %d, expected 20", s.MovesLeft())
	}
	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %q, expected playing", s.Status())
	}
	if s.Mode() != ModeColors {
		t.Errorf("Mode() = %q", s.Mode())
	}
}

func TestSessionWin(t *testing.T) {
	b := NewUniformBoard(TileForColor(Red))
	b.Set(OriginCoord, TileForColor(Green))
	s := NewSessionWithBoard(ModeColors, b)

	s.Play(ColorMove(Red))

	if s.Status() != StatusWon {
		t.Errorf("Status() = %q, expected won", s.Status())
	}
	if s.MovesLeft() != MoveLimit-1 {
		t.Errorf("MovesLeft() = %d, expected %d", s.MovesLeft(), MoveLimit-1)
	}
}

func TestSessionFarCornerBlocksWin(t *testing.T) {
	s := NewSessionWithBoard(ModeColors, cornerBoard(TileForColor(Red), TileForColor(Blue)))

	s.Play(ColorMove(Red))

	if s.Status() != StatusPlaying {
		t.Errorf("Status() = %q, expected playing", s.Status())
	}
}

func TestSessionHiddenFieldBlocksWin(t *testing.T) {
	// Shapes agree everywhere but the far corner is a different color.
	s := NewSessionWithBoard(ModeShapes, cornerBoard(TileForShape(Heart), Tile{Shape: Heart, Color: Blue}))

	s.Play(ShapeMove(Heart))

	if s.Status() == StatusWon {
		t.Error("win detection must compare color even in shapes mode")
	}
}

func TestSessionNoOpConsumesMove(t *testing.T) {
	s := NewSessionWithBoard(ModeColors, cornerBoard(TileForColor(Red), TileForColor(Blue)))
	before := s.Board().Cells()

	if n := s.Play(ColorMove(Red)); n != 0 {
		t.Errorf("no-op move converted %d cells", n)
	}
	if s.MovesLeft() != MoveLimit-1 {
		t.Errorf("MovesLeft() = %d, expected %d", s.MovesLeft(), MoveLimit-1)
	}
	if s.Board().Cells() != before {
		t.Error("no-op move changed the board")
	}
}

func TestSessionLosesWhenBudgetRunsOut(t *testing.T) {
	s := NewSessionWithBoard(ModeColors, cornerBoard(TileForColor(Red), TileForColor(Blue)))

	for i := 1; i < MoveLimit; i++ {
		s.Play(ColorMove(Red))
		if s.Status() != StatusPlaying {
			t.Fatalf("after %d moves Status() = %q, expected playing", i, s.Status())
		}
	}

	s.Play(ColorMove(Red))

	if s.Status() != StatusLost {
		t.Errorf("Status() = %q, expected lost", s.Status())
	}
	if s.MovesLeft() != 0 {
		t.Errorf("MovesLeft() = %d, expected 0", s.MovesLeft())
	}
}

func TestSessionWinOnLastMoveBeatsLoss(t *testing.T) {
	b := NewUniformBoard(TileForColor(Red))
	b.Set(OriginCoord, TileForColor(Green))
	s := NewSessionWithBoard(ModeColors, b)

	for i := 1; i < MoveLimit; i++ {
		s.Play(ColorMove(Green))
	}
	if s.MovesLeft() != 1 || s.Status() != StatusPlaying {
		t.Fatalf("before final move: moves=%d status=%q", s.MovesLeft(), s.Status())
	}

	s.Play(ColorMove(Red))

	if s.Status() != StatusWon {
		t.Errorf("Status() = %q, expected won on the final move", s.Status())
	}
	if s.MovesLeft() != 0 {
		t.Errorf("MovesLeft() = %d, expected 0", s.MovesLeft())
	}
}

func TestSessionBothModeFillsByShape(t *testing.T) {
	b := stripBoard(Red, Red, Blue)
	s := NewSessionWithBoard(ModeBoth, b)

	n := s.Play(ShapeMove(Diamond))

	if n != 2 {
		t.Errorf("converted %d cells, expected 2", n)
	}
	if got := s.Board().At(C(1, 0)); got != TileForColor(Blue) {
		t.Errorf("cell (1,0) = %v, expected Diamond/Blue", got)
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSession(ModeShapes, rand.New(rand.NewSource(7)))
	before := s.Board().Cells()

	s.Quit()

	if s.Status() != StatusQuit {
		t.Errorf("Status() = %q, expected quit", s.Status())
	}
	if s.MovesLeft() != MoveLimit {
		t.Errorf("quitting should not consume a move, MovesLeft() = %d", s.MovesLeft())
	}
	if s.Board().Cells() != before {
		t.Error("quitting should not touch the board")
	}
}

func TestSessionQuitAfterWinKeepsWin(t *testing.T) {
	b := NewUniformBoard(TileForColor(Red))
	b.Set(OriginCoord, TileForColor(Green))
	s := NewSessionWithBoard(ModeColors, b)
	s.Play(ColorMove(Red))

	s.Quit()

	if s.Status() != StatusWon {
		t.Errorf("Status() = %q, expected won", s.Status())
	}
}

func TestSessionPlayAfterEndPanics(t *testing.T) {
	s := NewSession(ModeColors, rand.New(rand.NewSource(3)))
	s.Quit()

	defer func() {
		if recover() == nil {
			t.Error("Play on a finished session should panic")
		}
	}()
	s.Play(ColorMove(Red))
}
