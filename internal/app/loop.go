package app

import (
	"cellmap/pkg/core"
	"cellmap/pkg/sims/life"
)

// Loop holds the host-side run state: pause, single stepping, rate limiting
// and the total number of generations executed across resets.
type Loop struct {
	board   *life.Board
	limiter *core.FixedStep

	paused      bool
	tickOnce    bool
	seed        int64
	generations int64
}

// NewLoop wraps board. A nil limiter steps on every tick.
func NewLoop(board *life.Board, limiter *core.FixedStep) *Loop {
	return &Loop{board: board, limiter: limiter}
}

// Start seeds the board.
func (l *Loop) Start(seed int64) {
	l.seed = seed
	l.board.Reset(seed)
	l.tickOnce = false
}

// TogglePause flips the paused state.
func (l *Loop) TogglePause() { l.paused = !l.paused }

// Resume clears the paused state.
func (l *Loop) Resume() { l.paused = false }

// RequestStep advances one generation on the next Tick even while paused.
func (l *Loop) RequestStep() { l.tickOnce = true }

// Tick advances the board when it is due and reports whether it did.
func (l *Loop) Tick() bool {
	if l.paused && !l.tickOnce {
		return false
	}
	if !l.tickOnce && l.limiter != nil && !l.limiter.ShouldStep() {
		return false
	}
	l.board.Step()
	l.tickOnce = false
	l.generations++
	return true
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool { return l.paused }

// Seed returns the seed of the latest Start.
func (l *Loop) Seed() int64 { return l.seed }

// Generations returns the total generations stepped since the loop was made.
func (l *Loop) Generations() int64 { return l.generations }
