package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle layout
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

// GameState is the externally visible status of the game after a tick.
type GameState struct {
	Score        int  // Current score
	GameOver     bool // Whether the avatar has died
	Instructions bool // Whether the instructions overlay is showing
}

// StepResult is returned by a simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player chose Quit from the game-over menu
}
