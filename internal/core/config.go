package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic target placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current session score
	Stage    int  // Current stage number
	GameOver bool // Whether the run has ended (failed with no continue left)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events carry the feedback notifications that occurred during the tick;
// the platform decides how to render them (status line, sound, haptics).
type StepResult struct {
	State  GameState
	Events []Event
}
