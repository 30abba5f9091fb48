package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Tick      uint64 // Completed simulation steps
	Collected int    // Resources collected so far
	Remaining int    // Resources still buried
	Cleared   bool   // Every resource has been collected
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State   GameState
	Message string // Short description of what the step did, for the status line
}
