package ant

import (
	"fmt"
	"time"

	"gridgames/pkg/core"
)

// MaxSequenceLength bounds the color sequence an agent cycles through.
const MaxSequenceLength = 10

// DefaultConfig returns the standard configuration. The ant runs faster and
// on a larger board than the neighborhood automata.
func DefaultConfig() core.Config {
	return core.Config{
		BoardSize:      60,
		Interval:       10 * time.Millisecond,
		MaxIterations:  core.DefaultMaxIterations,
		SequenceLength: core.IntRange{Min: 1, Max: MaxSequenceLength},
		UntouchedTurn:  core.TurnLeft,
		Density:        core.Range{Min: 0.05, Max: 0.30},
	}
}

// Limits returns the board size and interval bounds the ant accepts.
func Limits() core.Limits {
	return core.Limits{
		BoardSize:  core.Bounds{Min: 10, Max: 200, Step: 2},
		IntervalMs: core.Bounds{Min: 10, Max: 200, Step: 10},
	}
}

func validate(cfg core.Config) error {
	r := cfg.SequenceLength
	if !r.Valid(1) || r.Max > MaxSequenceLength {
		return fmt.Errorf("sequence length [%d,%d] outside [1,%d]: %w", r.Min, r.Max, MaxSequenceLength, core.ErrInvalidConfig)
	}
	if !cfg.UntouchedTurn.Valid() {
		return fmt.Errorf("untouched turn %v: %w", cfg.UntouchedTurn, core.ErrInvalidConfig)
	}
	return nil
}
