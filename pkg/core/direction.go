package core

import "fmt"

// Facing is a heading on the grid. Values share the rotational encoding of
// Turn so that adding a turn modulo 4 composes rotations.
type Facing int

const (
	FacingUp Facing = iota
	FacingRight
	FacingDown
	FacingLeft
)

// Turn is the rotation applied by an agent when leaving a cell.
type Turn int

const (
	TurnNone Turn = iota
	TurnRight
	TurnAround
	TurnLeft
)

// NumTurns is the number of distinct Turn values.
const NumTurns = 4

// Valid reports whether f is one of the four headings.
func (f Facing) Valid() bool { return f >= FacingUp && f <= FacingLeft }

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingRight:
		return "right"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	default:
		return fmt.Sprintf("Facing(%d)", int(f))
	}
}

// Rotate returns f turned by t.
func (f Facing) Rotate(t Turn) (Facing, error) {
	if !f.Valid() {
		return f, fmt.Errorf("rotate %v: %w", f, ErrInvalidFacing)
	}
	if !t.Valid() {
		return f, fmt.Errorf("rotate %v by %v: %w", f, t, ErrInvalidTurn)
	}
	return Facing((int(f) + int(t)) % 4), nil
}

// Advance moves (col, row) one cell in direction f on a size*size torus.
func (f Facing) Advance(col, row, size int) (int, int, error) {
	switch f {
	case FacingUp:
		return col, wrap(row-1, size), nil
	case FacingRight:
		return wrap(col+1, size), row, nil
	case FacingDown:
		return col, wrap(row+1, size), nil
	case FacingLeft:
		return wrap(col-1, size), row, nil
	default:
		return col, row, fmt.Errorf("advance %v from (%d,%d): %w", f, col, row, ErrInvalidFacing)
	}
}

// Valid reports whether t is one of the four turn rules.
func (t Turn) Valid() bool { return t >= TurnNone && t <= TurnLeft }

// Next cycles to the following turn rule, wrapping LEFT back to NONE.
func (t Turn) Next() Turn { return Turn((int(t) + 1) % NumTurns) }

func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case TurnRight:
		return "right"
	case TurnAround:
		return "around"
	case TurnLeft:
		return "left"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// ParseTurn maps a turn name back to its value.
func ParseTurn(s string) (Turn, error) {
	for t := TurnNone; t <= TurnLeft; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return TurnNone, fmt.Errorf("turn %q: %w", s, ErrInvalidConfig)
}
