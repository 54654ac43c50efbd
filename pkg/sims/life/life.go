package life

import (
	"fmt"
	"image/color"

	"gridgames/pkg/core"
	"gridgames/pkg/palette"
)

const (
	cellDead  = 0
	cellAlive = 1
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	rng   *core.RNG
	board *core.Board[bool]
	snap  *core.Board[bool]
	cells []uint8

	living    int
	colorMode bool
}

// New returns a Life simulation with an all-dead board of the given size.
func New(size int, rng *core.RNG) (*Life, error) {
	l := &Life{rng: rng}
	if err := l.Reset(size); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	n := l.board.Size()
	return core.Size{W: n, H: n}
}

// Board exposes the live board.
func (l *Life) Board() *core.Board[bool] { return l.board }

// Living returns the number of live cells.
func (l *Life) Living() int { return l.living }

// Reset replaces the board with an all-dead one.
func (l *Life) Reset(size int) error {
	board, err := core.NewBoard[bool](size, nil)
	if err != nil {
		return fmt.Errorf("life reset: %w", err)
	}
	l.board = board
	l.snap = board.Clone()
	l.cells = make([]uint8, size*size)
	l.living = 0
	return nil
}

// Randomize clears the board, then brings each cell to life with a
// probability drawn once from density.
func (l *Life) Randomize(density core.Range) error {
	if err := l.Reset(l.board.Size()); err != nil {
		return err
	}
	p := l.rng.Uniform(density)
	cells := l.board.Cells()
	for i := range cells {
		if l.rng.Float64() < p {
			cells[i] = true
			l.living++
		}
	}
	return nil
}

// Step advances the simulation by one generation. Neighbors are read from a
// snapshot of the previous generation and results written to the live board.
func (l *Life) Step() error {
	l.snap.CopyFrom(l.board)
	size := l.board.Size()
	prev := l.snap.Cells()
	next := l.board.Cells()
	count := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := row*size + col
			neighbors := core.Tally(l.snap, col, row, countAlive, 0)
			alive := prev[idx]
			next[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
			if next[idx] {
				count++
			}
		}
	}
	l.living = count
	return nil
}

// Done reports that no cell survived the last generation.
func (l *Life) Done() bool { return l.living == 0 }

// Toggle flips a single cell.
func (l *Life) Toggle(col, row int) error {
	alive, err := l.board.Get(col, row)
	if err != nil {
		return fmt.Errorf("toggle: %w", err)
	}
	_ = l.board.Set(col, row, !alive)
	if alive {
		l.living--
	} else {
		l.living++
	}
	return nil
}

// Alive reports whether the cell at (col, row) is alive.
func (l *Life) Alive(col, row int) (bool, error) {
	return l.board.Get(col, row)
}

// SetCell brings a cell to life or kills it. Cells already in the requested
// state are left alone.
func (l *Life) SetCell(col, row int, alive bool) (bool, error) {
	cur, err := l.board.Get(col, row)
	if err != nil {
		return false, fmt.Errorf("set cell: %w", err)
	}
	if cur == alive {
		return false, nil
	}
	return true, l.Toggle(col, row)
}

// Recolor switches live cells between the dark fill and the count-based hue.
func (l *Life) Recolor() { l.colorMode = !l.colorMode }

// Cells exposes the current grid as palette indices.
func (l *Life) Cells() []uint8 {
	for i, alive := range l.board.Cells() {
		if alive {
			l.cells[i] = cellAlive
		} else {
			l.cells[i] = cellDead
		}
	}
	return l.cells
}

// Palette returns the dead and live fills.
func (l *Life) Palette() []color.RGBA {
	live := palette.Dark
	if l.colorMode {
		live = palette.Hue(l.living, l.board.Size())
	}
	return []color.RGBA{cellDead: palette.Light, cellAlive: live}
}

// Display returns the palette index of a single cell.
func (l *Life) Display(col, row int) (uint8, error) {
	alive, err := l.board.Get(col, row)
	if err != nil {
		return 0, err
	}
	if alive {
		return cellAlive, nil
	}
	return cellDead, nil
}

func countAlive(alive bool, n int) int {
	if alive {
		return n + 1
	}
	return n
}

func init() {
	core.Register(core.Variant{
		Name:     "life",
		Defaults: DefaultConfig(),
		Limits:   Limits(),
		New: func(cfg core.Config, rng *core.RNG) (core.Sim, error) {
			return New(cfg.BoardSize, rng)
		},
	})
}
