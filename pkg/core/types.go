package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the behavior a cellular automaton variant plugs into the scheduler:
// Reset builds a fresh board, Step applies one tick, Done reports natural
// termination.
type Sim interface {
	Name() string
	Size() Size
	Reset(size int) error
	Step() error
	Done() bool
	Randomize(density Range) error

	// Cells exposes palette indices in row-major order for renderers.
	Cells() []uint8
	Palette() []color.RGBA
	Display(col, row int) (uint8, error)
}

// Toggler is implemented by variants that accept manual cell edits.
type Toggler interface {
	Toggle(col, row int) error
}

// CellSetter is implemented by variants whose cells can be painted alive or
// dead directly. SetCell reports whether the cell changed.
type CellSetter interface {
	Alive(col, row int) (bool, error)
	SetCell(col, row int, alive bool) (bool, error)
}

// LivingCounter is implemented by variants that track a live-cell count.
type LivingCounter interface {
	Living() int
}

// UntouchedToggler is implemented by variants with a configurable rule for
// cells no agent has visited yet.
type UntouchedToggler interface {
	ToggleUntouched() Turn
	Untouched() Turn
}

// Recolorer is implemented by variants whose display colors can be re-rolled.
type Recolorer interface {
	Recolor()
}

// AgentLocator is implemented by variants with a moving agent that renderers
// draw distinctly.
type AgentLocator interface {
	AgentAt() Coord
}

// Occupier is implemented by variants that distinguish occupied cells from
// background ones other than through a live count.
type Occupier interface {
	Occupied() int
}

// StatusReporter is implemented by variants with display-only statistics.
type StatusReporter interface {
	Status() []Parameter
}

// Factory constructs a Sim from a validated configuration and a seeded source.
type Factory func(cfg Config, rng *RNG) (Sim, error)

// Variant bundles a factory with the defaults and bounds it accepts.
type Variant struct {
	Name     string
	Defaults Config
	Limits   Limits
	New      Factory
}

var sims = map[string]Variant{}

// Register adds a variant under its name.
func Register(v Variant) {
	if v.Name == "" || v.New == nil {
		return
	}
	sims[v.Name] = v
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	v, ok := sims[name]
	return v, ok
}

// Names lists the registered variant names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
