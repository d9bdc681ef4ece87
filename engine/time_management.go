package engine

import "time"

const (
	moveOverhead   = 30 * time.Millisecond // reserve for protocol I/O
	minMoveTime    = 5 * time.Millisecond
	panicThreshold = time.Second
)

// TimeBudget returns how long to think for one move given the side's remaining
// clock, its increment and the current fullmove number. A non-positive
// remaining time yields zero, meaning no clock limit.
func TimeBudget(remaining, increment time.Duration, fullmove int) time.Duration {
	if remaining <= 0 {
		return 0
	}
	movesLeft := estimateMovesRemaining(fullmove)

	var budget time.Duration
	switch {
	case increment > 0 && remaining < panicThreshold:
		// Panic: live off the increment and bank the rest.
		budget = increment * 9 / 10
	case increment > 0:
		budget = remaining/time.Duration(movesLeft) + increment
	default:
		budget = remaining / 40
	}

	// Never spend more than 70% of the clock.
	budget = Min(budget, remaining*7/10)
	budget = Min(budget, remaining-moveOverhead)
	return Max(budget, minMoveTime)
}

// estimateMovesRemaining interpolates from 45 moves in the opening down to 20
// by move 50.
func estimateMovesRemaining(fullmove int) int {
	return Clamp(45-fullmove/2, 20, 45)
}
