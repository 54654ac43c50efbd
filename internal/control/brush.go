package control

import (
	"errors"

	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// Brush paints cells while a mouse button is held. The cell under the press
// decides the mode: pressing a dead cell creates, pressing a live one
// destroys. Variants without settable cells fall back to a single toggle
// on press.
type Brush struct {
	held  bool
	paint bool
	alive bool
	last  core.Coord
}

// Held reports whether a stroke is in progress.
func (b *Brush) Held() bool { return b.held }

// Press starts a stroke at (col, row).
func (b *Brush) Press(g *game.Game, col, row int) error {
	b.held, b.paint = true, false
	alive, err := g.CellAlive(col, row)
	if errors.Is(err, core.ErrUnsupported) {
		return g.ToggleCell(col, row)
	}
	if err != nil {
		return err
	}
	b.paint = true
	b.alive = !alive
	b.last = core.Coord{Col: col, Row: row}
	_, err = g.SetCell(col, row, b.alive)
	return err
}

// Drag extends the stroke to (col, row). Repeated reports for the cell last
// painted are ignored.
func (b *Brush) Drag(g *game.Game, col, row int) error {
	if !b.paint {
		return nil
	}
	c := core.Coord{Col: col, Row: row}
	if c == b.last {
		return nil
	}
	b.last = c
	_, err := g.SetCell(col, row, b.alive)
	return err
}

// Release ends the stroke.
func (b *Brush) Release() { b.held, b.paint = false, false }
