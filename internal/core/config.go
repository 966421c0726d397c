package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for board generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	MovesLeft int  // Turns remaining before the game is lost
	GameOver  bool // Whether the game has ended (won, lost or quit)
	Won       bool // Whether the game ended in a win
	Paused    bool // Set while the window is too small to play
}

// StepResult is returned by Game.Step() after each turn.
type StepResult struct {
	State     GameState
	Converted int // Cells changed by the move (0 for no-op or rejected input)
}
