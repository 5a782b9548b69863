package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	FPS      int   // Presentation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		FPS:      60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a fire-and-forget side effect requested by a game, such as a sound.
// The platform decides how (or whether) to present it.
type Cue int

const (
	CueHit  Cue = iota + 1 // A projectile destroyed a target
	CueShot                // The player fired
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueShot:
		return "shot"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each platform frame.
// Contains the updated game state and any cues raised by the ticks it ran.
type StepResult struct {
	State GameState
	Ticks int   // Simulation ticks executed during this frame
	Cues  []Cue // Cues raised during those ticks, in order
}
