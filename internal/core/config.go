package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ViewportW int   // Viewport width in logical pixels
	TickRate  int   // Frames per second requested from the refresh signal (default 60)
	Seed      int64 // RNG seed for deterministic enemy spawning
}

// SessionState is the UI-facing view of a game session.
// Started and Over are never both true.
type SessionState struct {
	Started bool // A session is running
	Over    bool // The last session ended in a collision
	Score   int  // Current (or final) score
}

// Idle reports whether no session has begun yet.
func (s SessionState) Idle() bool {
	return !s.Started && !s.Over
}
