package rps

import (
	"time"

	"gridgames/pkg/core"
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() core.Config {
	return core.Config{
		BoardSize:      60,
		Interval:       60 * time.Millisecond,
		MaxIterations:  core.DefaultMaxIterations,
		SequenceLength: core.IntRange{Min: 1, Max: 10},
		UntouchedTurn:  core.TurnLeft,
		Density:        core.Range{Min: 0.05, Max: 0.30},
	}
}

// Limits returns the board size and interval bounds RPS accepts.
func Limits() core.Limits {
	return core.Limits{
		BoardSize:  core.Bounds{Min: 10, Max: 100, Step: 2},
		IntervalMs: core.Bounds{Min: 10, Max: 200, Step: 10},
	}
}
