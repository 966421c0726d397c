package floodit

import "math/rand"

// MoveLimit is the number of turns a session starts with.
const MoveLimit = 20

// Status is the session state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusQuit    Status = "quit"
)

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s != StatusPlaying
}

// Session is one game from the first board to a win, loss or quit.
// It exclusively owns its board.
type Session struct {
	board     *Board
	mode      Mode
	movesLeft int
	status    Status
}

// NewSession starts a session on a freshly generated board.
func NewSession(mode Mode, rng *rand.Rand) *Session {
	return NewSessionWithBoard(mode, NewBoard(rng))
}

// NewSessionWithBoard starts a session on the given board.
// The session takes ownership of b.
func NewSessionWithBoard(mode Mode, b *Board) *Session {
	return &Session{
		board:     b,
		mode:      mode,
		movesLeft: MoveLimit,
		status:    StatusPlaying,
	}
}

// Board returns a copy of the session's board.
func (s *Session) Board() *Board {
	return s.board.Clone()
}

// Mode returns the display mode fixed at session start.
func (s *Session) Mode() Mode {
	return s.mode
}

// MovesLeft returns the remaining move budget.
func (s *Session) MovesLeft() int {
	return s.movesLeft
}

// Status returns the current session state.
func (s *Session) Status() Status {
	return s.status
}

// Play applies one move at the origin and advances the turn.
// The budget drops by exactly one even when the move changes nothing.
// A win is checked before the budget, so winning on the last move wins.
// Returns the number of converted cells.
func (s *Session) Play(m Move) int {
	if s.status.Over() {
		panic("floodit: move played on a finished session")
	}

	var converted int
	if m.ByColor {
		converted = s.board.FillColor(m.Color)
	} else {
		converted = s.board.FillShape(m.Shape)
	}

	s.movesLeft--

	switch {
	case s.board.Uniform():
		s.status = StatusWon
	case s.movesLeft == 0:
		s.status = StatusLost
	}

	return converted
}

// Quit ends the session without touching the board.
func (s *Session) Quit() {
	if s.status == StatusPlaying {
		s.status = StatusQuit
	}
}
