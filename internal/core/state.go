package core

import (
	"math/rand"
	"time"
)

// Phase is the top-level mode of a single game instance.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Viewport width in cells
	ScreenH int   // Viewport height in cells
	Seed    int64 // RNG seed; 0 means pick one from the clock

	// TickInterval is the main loop period. Games that count ticks
	// rather than measure time assume this interval.
	TickInterval time.Duration
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 16ms ticks.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 16 * time.Millisecond,
	}
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Reseeded returns a copy with a fresh seed drawn from rng, so a restart
// gets a new board while a seeded session stays reproducible.
func (c RuntimeConfig) Reseeded(rng *rand.Rand) RuntimeConfig {
	c.Seed = rng.Int63()
	if c.Seed == 0 {
		c.Seed = 1
	}
	return c
}

// GameState is the externally visible summary of a game, polled by the
// dispatcher after each tick.
type GameState struct {
	Score    int
	Level    int // 0 for games without levels
	Phase    Phase
	GameOver bool
	Won      bool
}

// Paused reports whether the game is in the paused phase.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}
