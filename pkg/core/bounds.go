package core

import (
	"fmt"
	"math"
)

// Bounds describes an adjustable integer setting: inclusive limits plus the
// granularity accepted values snap to.
type Bounds struct {
	Min  int
	Max  int
	Step int
}

// Clamp forces v into [Min, Max] and rounds it up to a multiple of Step.
func (b Bounds) Clamp(v int) int {
	if v > b.Max {
		return b.Max
	}
	if v < b.Min {
		return b.Min
	}
	return b.snap(v)
}

// Normalize rejects values outside [Min, Max] and rounds accepted values up to
// a multiple of Step.
func (b Bounds) Normalize(v int) (int, error) {
	if v < b.Min || v > b.Max {
		return 0, fmt.Errorf("%d not in [%d,%d]: %w", v, b.Min, b.Max, ErrInvalidConfig)
	}
	return b.snap(v), nil
}

func (b Bounds) snap(v int) int {
	if b.Step <= 1 || v%b.Step == 0 {
		return v
	}
	snapped := int(math.Ceil(float64(v)/float64(b.Step))) * b.Step
	if snapped > b.Max {
		snapped -= b.Step
	}
	return snapped
}

// Limits collects the bounds a variant enforces on user-adjustable settings.
type Limits struct {
	BoardSize  Bounds
	IntervalMs Bounds
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min, Max int
}

// Valid reports whether the range is non-empty and starts at or above lo.
func (r IntRange) Valid(lo int) bool { return r.Min >= lo && r.Max >= r.Min }

// Range is an inclusive floating-point interval.
type Range struct {
	Min, Max float64
}

// Valid reports whether the range is ordered and within [0, 1].
func (r Range) Valid() bool { return r.Min >= 0 && r.Max <= 1 && r.Min <= r.Max }
