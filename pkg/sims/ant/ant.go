// Package ant implements a generalized Langton's ant: a single agent walks a
// toroidal board, turning by the rule stored in each cell and repainting it
// with the next color of its sequence.
package ant

import (
	"fmt"
	"image/color"
	"slices"

	"gridgames/pkg/core"
	"gridgames/pkg/palette"
)

// Cell is the color a cell was last painted with and the turn rule bound to
// that color when it was painted.
type Cell struct {
	Color ColorID
	Turn  core.Turn
}

// Agent is the walker's position, heading and place in its color sequence.
type Agent struct {
	Sequence []ColorID
	Index    int
	Col      int
	Row      int
	Facing   core.Facing
}

// Ant holds the board, agent and color table. The sequence and table survive
// resets; only the board and the agent are rebuilt.
type Ant struct {
	rng   *core.RNG
	table *Table
	agent Agent
	board *core.Board[Cell]
	cells []uint8
}

// New builds an ant with a freshly generated color sequence and table.
func New(cfg core.Config, rng *core.RNG) (*Ant, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	seq := GenerateSequence(rng, cfg.SequenceLength)
	return NewWithRules(cfg.BoardSize, rng, seq, BuildTable(rng, seq, cfg.UntouchedTurn))
}

// NewWithRules builds an ant with an explicit sequence and table. Every id in
// the sequence must have a table entry.
func NewWithRules(size int, rng *core.RNG, sequence []ColorID, table *Table) (*Ant, error) {
	if len(sequence) == 0 || len(sequence) > MaxSequenceLength {
		return nil, fmt.Errorf("sequence length %d: %w", len(sequence), core.ErrInvalidConfig)
	}
	for _, id := range sequence {
		if _, ok := table.Entry(id); !ok || id == Untouched {
			return nil, fmt.Errorf("sequence color %d has no table entry: %w", id, core.ErrInvalidConfig)
		}
	}
	a := &Ant{rng: rng, table: table, agent: Agent{Sequence: slices.Clone(sequence)}}
	if err := a.Reset(size); err != nil {
		return nil, err
	}
	return a, nil
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return "ant" }

// Size returns the grid dimensions.
func (a *Ant) Size() core.Size {
	n := a.board.Size()
	return core.Size{W: n, H: n}
}

// Board exposes the live board.
func (a *Ant) Board() *core.Board[Cell] { return a.board }

// Table exposes the color table.
func (a *Ant) Table() *Table { return a.table }

// Agent returns a copy of the agent state.
func (a *Ant) Agent() Agent {
	ag := a.agent
	ag.Sequence = slices.Clone(a.agent.Sequence)
	return ag
}

// AgentAt returns the agent's cell.
func (a *Ant) AgentAt() core.Coord { return core.Coord{Col: a.agent.Col, Row: a.agent.Row} }

// Reset clears the board to untouched cells and drops the agent on a random
// cell facing up at the start of its sequence.
func (a *Ant) Reset(size int) error {
	board, err := core.NewBoard[Cell](size, nil)
	if err != nil {
		return fmt.Errorf("ant reset: %w", err)
	}
	board.Fill(Cell{Color: Untouched, Turn: a.table.Untouched()})
	a.board = board
	a.cells = make([]uint8, size*size)
	a.agent.Index = 0
	a.agent.Col = a.rng.IntN(size)
	a.agent.Row = a.rng.IntN(size)
	a.agent.Facing = core.FacingUp
	return nil
}

// Place moves the agent to (col, row) with the given heading.
func (a *Ant) Place(col, row int, f core.Facing) error {
	if !a.board.Contains(col, row) {
		return fmt.Errorf("place agent at (%d,%d): %w", col, row, core.ErrOutOfRange)
	}
	if !f.Valid() {
		return fmt.Errorf("place agent facing %v: %w", f, core.ErrInvalidFacing)
	}
	a.agent.Col, a.agent.Row, a.agent.Facing = col, row, f
	return nil
}

// Randomize resets, then paints each cell with a random table color with a
// probability drawn from density. The agent's start cell stays untouched.
func (a *Ant) Randomize(density core.Range) error {
	if err := a.Reset(a.board.Size()); err != nil {
		return err
	}
	p := a.rng.Uniform(density)
	n := a.table.Len()
	size := a.board.Size()
	cells := a.board.Cells()
	for i := range cells {
		if i == a.agent.Row*size+a.agent.Col {
			continue
		}
		if a.rng.Float64() < p {
			id := ColorID(a.rng.IntN(n))
			e, _ := a.table.Entry(id)
			cells[i] = Cell{Color: id, Turn: e.Turn}
		}
	}
	return nil
}

// Step moves the agent one cell.
func (a *Ant) Step() error {
	ag := &a.agent
	cell, err := a.board.Get(ag.Col, ag.Row)
	if err != nil {
		return fmt.Errorf("ant step: %w", err)
	}
	turn := cell.Turn
	if a.untouched(cell) {
		turn = a.table.Untouched()
	}

	id := ag.Sequence[ag.Index]
	paint, _ := a.table.Entry(id)
	if err := a.board.Set(ag.Col, ag.Row, Cell{Color: id, Turn: paint.Turn}); err != nil {
		return fmt.Errorf("ant step: %w", err)
	}
	ag.Index = (ag.Index + 1) % len(ag.Sequence)

	facing, err := ag.Facing.Rotate(turn)
	if err != nil {
		return fmt.Errorf("ant step: %w", err)
	}
	col, row, err := facing.Advance(ag.Col, ag.Row, a.board.Size())
	if err != nil {
		return fmt.Errorf("ant step: %w", err)
	}
	ag.Facing, ag.Col, ag.Row = facing, col, row
	return nil
}

// Done is always false: the walk never settles.
func (a *Ant) Done() bool { return false }

// untouched compares display colors, so a painted color that happens to match
// the sentinel's fill takes the untouched behavior.
func (a *Ant) untouched(c Cell) bool {
	sentinel, _ := a.table.Entry(Untouched)
	e, ok := a.table.Entry(c.Color)
	return !ok || e.Display == sentinel.Display
}

// Occupied counts cells the ant has painted. The cell under the agent counts
// only if it has been painted.
func (a *Ant) Occupied() int {
	n := 0
	for _, c := range a.board.Cells() {
		if c.Color != Untouched {
			n++
		}
	}
	return n
}

// ToggleUntouched advances the untouched-cell behavior to the next turn and
// returns it.
func (a *Ant) ToggleUntouched() core.Turn {
	t := a.table.Untouched().Next()
	a.table.setUntouched(t)
	return t
}

// Untouched returns the current untouched-cell behavior.
func (a *Ant) Untouched() core.Turn { return a.table.Untouched() }

// Recolor re-rolls every table color except the untouched fill.
func (a *Ant) Recolor() { a.table.recolor(a.rng) }

// Cells exposes the grid as palette indices: 0 for untouched, id+1 for painted
// cells and the final palette slot for the agent.
func (a *Ant) Cells() []uint8 {
	for i, c := range a.board.Cells() {
		a.cells[i] = uint8(c.Color + 1)
	}
	a.cells[a.board.Index(a.agent.Col, a.agent.Row)] = a.agentIndex()
	return a.cells
}

// Palette returns the untouched fill, one color per table id, then the agent.
func (a *Ant) Palette() []color.RGBA {
	out := make([]color.RGBA, 0, len(a.table.entries)+1)
	for _, e := range a.table.entries {
		out = append(out, e.Display)
	}
	return append(out, palette.Agent)
}

// Display returns the palette index of a single cell.
func (a *Ant) Display(col, row int) (uint8, error) {
	c, err := a.board.Get(col, row)
	if err != nil {
		return 0, err
	}
	if col == a.agent.Col && row == a.agent.Row {
		return a.agentIndex(), nil
	}
	return uint8(c.Color + 1), nil
}

func (a *Ant) agentIndex() uint8 { return uint8(len(a.table.entries)) }

func init() {
	core.Register(core.Variant{
		Name:     "ant",
		Defaults: DefaultConfig(),
		Limits:   Limits(),
		New: func(cfg core.Config, rng *core.RNG) (core.Sim, error) {
			return New(cfg, rng)
		},
	})
}
