package core

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultMaxIterations caps every variant unless configured otherwise.
const DefaultMaxIterations = 999999

// Config carries the construction parameters shared by every variant. Fields a
// variant has no use for are ignored.
type Config struct {
	BoardSize     int
	Interval      time.Duration
	MaxIterations int

	// Ant only.
	SequenceLength IntRange
	UntouchedTurn  Turn

	// Live-cell (or painted-cell) probability range used by Randomize.
	Density Range

	// Seed feeds the RNG; zero asks the caller to pick one.
	Seed int64
}

// IntervalMs returns the tick period in whole milliseconds.
func (c Config) IntervalMs() int { return int(c.Interval / time.Millisecond) }

// Validate checks c against l and returns a copy with board size and interval
// snapped to their step.
func (c Config) Validate(l Limits) (Config, error) {
	size, err := l.BoardSize.Normalize(c.BoardSize)
	if err != nil {
		return c, fmt.Errorf("board size: %w", err)
	}
	c.BoardSize = size
	ms, err := l.IntervalMs.Normalize(c.IntervalMs())
	if err != nil {
		return c, fmt.Errorf("interval ms: %w", err)
	}
	c.Interval = time.Duration(ms) * time.Millisecond
	if c.MaxIterations <= 0 {
		return c, fmt.Errorf("max iterations %d: %w", c.MaxIterations, ErrInvalidConfig)
	}
	if !c.SequenceLength.Valid(1) {
		return c, fmt.Errorf("sequence length [%d,%d]: %w", c.SequenceLength.Min, c.SequenceLength.Max, ErrInvalidConfig)
	}
	if !c.UntouchedTurn.Valid() {
		return c, fmt.Errorf("untouched turn %v: %w", c.UntouchedTurn, ErrInvalidConfig)
	}
	if !c.Density.Valid() {
		return c, fmt.Errorf("density [%g,%g]: %w", c.Density.Min, c.Density.Max, ErrInvalidConfig)
	}
	return c, nil
}

// ApplyMap overrides fields of c from flag-style key/value pairs. Unparseable
// or out-of-domain values are ignored, leaving the existing value in place.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BoardSize = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["max_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxIterations = parsed
		}
	}
	if v, ok := cfg["seq_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SequenceLength.Min = parsed
		}
	}
	if v, ok := cfg["seq_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SequenceLength.Max = parsed
		}
	}
	if c.SequenceLength.Max < c.SequenceLength.Min {
		c.SequenceLength.Max = c.SequenceLength.Min
	}
	if v, ok := cfg["untouched"]; ok {
		if parsed, err := ParseTurn(v); err == nil {
			c.UntouchedTurn = parsed
		}
	}
	if v, ok := cfg["density_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density.Min = parsed
		}
	}
	if v, ok := cfg["density_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density.Max = parsed
		}
	}
	if c.Density.Max < c.Density.Min {
		c.Density.Max = c.Density.Min
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
