// Package rps implements a cyclic-dominance automaton: rock yields to paper,
// paper to scissors, scissors to rock, once enough of the predator surrounds
// a cell.
package rps

import (
	"fmt"
	"image/color"
	"strconv"

	"gridgames/pkg/core"
	"gridgames/pkg/palette"
)

// State is the value held by a single cell.
type State uint8

const (
	Rock State = iota
	Paper
	Scissors
)

// NumStates is the number of distinct cell states.
const NumStates = 3

// Threshold is the predator neighbor count that converts a cell.
const Threshold = 3

func (s State) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Predator returns the state that converts s.
func (s State) Predator() State { return (s + 1) % NumStates }

// Counts tallies cells per state, indexed by State.
type Counts [NumStates]int

// Transition returns the next value of a cell currently in s whose neighbors
// tally to n. Only the predator of the pre-tick state is consulted, so a cell
// changes at most once per tick.
func Transition(s State, n Counts) State {
	switch s {
	case Rock:
		if n[Paper] >= Threshold {
			return Paper
		}
	case Paper:
		if n[Scissors] >= Threshold {
			return Scissors
		}
	case Scissors:
		if n[Rock] >= Threshold {
			return Rock
		}
	}
	return s
}

// RPS holds the board and display colors for the cyclic automaton.
type RPS struct {
	rng    *core.RNG
	board  *core.Board[State]
	snap   *core.Board[State]
	cells  []uint8
	colors [NumStates]color.RGBA
	counts Counts
}

// New returns an RPS simulation with a randomly seeded board.
func New(size int, rng *core.RNG) (*RPS, error) {
	r := &RPS{rng: rng}
	r.Recolor()
	if err := r.Reset(size); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the simulation identifier.
func (r *RPS) Name() string { return "rps" }

// Size returns the grid dimensions.
func (r *RPS) Size() core.Size {
	n := r.board.Size()
	return core.Size{W: n, H: n}
}

// Board exposes the live board.
func (r *RPS) Board() *core.Board[State] { return r.board }

// Counts returns the per-state totals after the last tick. They feed displays
// only; the rule never reads them.
func (r *RPS) Counts() Counts { return r.counts }

// Status reports the per-state totals for a status panel.
func (r *RPS) Status() []core.Parameter {
	out := make([]core.Parameter, 0, NumStates)
	for s := Rock; s <= Scissors; s++ {
		out = append(out, core.Parameter{Key: s.String(), Label: s.String(), Type: core.ParamTypeInt, Value: strconv.Itoa(r.counts[s])})
	}
	return out
}

// Reset fills a new board with uniformly random states.
func (r *RPS) Reset(size int) error {
	board, err := core.NewBoard(size, func(int, int) State { return State(r.rng.IntN(NumStates)) })
	if err != nil {
		return fmt.Errorf("rps reset: %w", err)
	}
	r.board = board
	r.snap = board.Clone()
	r.cells = make([]uint8, size*size)
	r.recount()
	return nil
}

// Randomize re-rolls every cell. Every cell always holds one of the three
// states, so density does not apply.
func (r *RPS) Randomize(core.Range) error {
	return r.Reset(r.board.Size())
}

// Step applies one tick of cyclic dominance against a snapshot of the
// previous tick.
func (r *RPS) Step() error {
	r.snap.CopyFrom(r.board)
	size := r.board.Size()
	prev := r.snap.Cells()
	next := r.board.Cells()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := row*size + col
			n := core.Tally(r.snap, col, row, tallyState, Counts{})
			next[idx] = Transition(prev[idx], n)
		}
	}
	r.recount()
	return nil
}

// Done is always false: cyclic dominance has no fixed point in general.
func (r *RPS) Done() bool { return false }

// Recolor draws a new random color for each state.
func (r *RPS) Recolor() {
	for i := range r.colors {
		r.colors[i] = palette.Random(r.rng)
	}
}

// Cells exposes the current grid as palette indices.
func (r *RPS) Cells() []uint8 {
	for i, s := range r.board.Cells() {
		r.cells[i] = uint8(s)
	}
	return r.cells
}

// Palette returns one color per state.
func (r *RPS) Palette() []color.RGBA {
	out := make([]color.RGBA, NumStates)
	copy(out, r.colors[:])
	return out
}

// Display returns the palette index of a single cell.
func (r *RPS) Display(col, row int) (uint8, error) {
	s, err := r.board.Get(col, row)
	return uint8(s), err
}

func (r *RPS) recount() {
	r.counts = Counts{}
	for _, s := range r.board.Cells() {
		r.counts[s]++
	}
}

func tallyState(s State, n Counts) Counts {
	n[s]++
	return n
}

func init() {
	core.Register(core.Variant{
		Name:     "rps",
		Defaults: DefaultConfig(),
		Limits:   Limits(),
		New: func(cfg core.Config, rng *core.RNG) (core.Sim, error) {
			return New(cfg.BoardSize, rng)
		},
	})
}
