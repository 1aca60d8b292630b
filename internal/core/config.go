package core

// RuntimeConfig contains per-run settings passed to the game on Reset.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: DefaultFPS,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status is the state of the game loop's state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusTerminated
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason records why a run reached StatusTerminated.
type Reason int

const (
	ReasonNone      Reason = iota
	ReasonCollision        // creature touched an obstacle
	ReasonBounds           // creature left the playable vertical range
	ReasonQuit             // player asked to quit
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonCollision:
		return "collision"
	case ReasonBounds:
		return "out of bounds"
	case ReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score  int    // Obstacles cleared; never decreases
	Frame  int    // Ticks simulated while running; frozen while paused
	Status Status // Running, Paused or Terminated
	Reason Reason // Set once Status is Terminated
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Status == StatusPaused
}

// Terminated reports whether the run has ended.
func (s GameState) Terminated() bool {
	return s.Status == StatusTerminated
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Scored int // Points gained during this tick
}
