package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Drivers fill it from the terminal and the command line.
type RuntimeConfig struct {
	FieldW   int   // Play-field width in pixels (0 = use game config)
	FieldH   int   // Play-field height in pixels (0 = use game config)
	TickRate int   // Driver ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepResult is returned by the physics step after each tick.
type StepResult struct {
	Cleared bool // All blocks are gone; the driver must stop ticking
	Paused  bool // The step was skipped because the game is paused
}
