package core

import "errors"

var (
	// ErrOutOfRange reports a cell lookup outside [0,size).
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidConfig reports a configuration value outside its documented bounds.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidFacing reports an agent heading outside UP..LEFT.
	ErrInvalidFacing = errors.New("invalid facing")
	// ErrInvalidTurn reports a turn rule outside NONE..LEFT.
	ErrInvalidTurn = errors.New("invalid turn")
	// ErrUnsupported is returned when a command does not apply to the active variant.
	ErrUnsupported = errors.New("unsupported by variant")
	// ErrClosed is returned by commands issued after the scheduler shut down.
	ErrClosed = errors.New("scheduler closed")
	// ErrHalted is returned by Start after a tick failed; only Reset clears it.
	ErrHalted = errors.New("simulation halted")
)

// ErrExhausted is returned when a step is requested after maxIterations ticks.
var ErrExhausted = errors.New("max iterations reached")
