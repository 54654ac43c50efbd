// Package game binds a registered variant to a tick scheduler and exposes the
// query and command surface presentation layers drive.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gridgames/pkg/core"

	// Variants register themselves with core.
	_ "gridgames/pkg/sims/ant"
	_ "gridgames/pkg/sims/life"
	_ "gridgames/pkg/sims/rps"
)

// Game is one running simulation. All methods are safe for concurrent use;
// they run on the scheduler goroutine.
type Game struct {
	id      string
	variant core.Variant
	log     *slog.Logger
	sched   *core.Scheduler

	// Owned by the scheduler goroutine.
	cfg core.Config
	sim core.Sim
}

// Frame is a copy of the board and its colors for a renderer.
type Frame struct {
	Size      core.Size
	Cells     []uint8
	Palette   []color.RGBA
	Agent     *core.Coord
	Iteration int
	Running   bool
}

// DefaultConfig returns the registered defaults for variant.
func DefaultConfig(variant string) (core.Config, error) {
	v, ok := core.Lookup(variant)
	if !ok {
		return core.Config{}, fmt.Errorf("unknown variant %q: %w", variant, core.ErrInvalidConfig)
	}
	return v.Defaults, nil
}

// New validates cfg against the variant's limits, builds the board and starts
// the scheduler goroutine in the stopped state. A zero seed is replaced with
// one derived from the current time.
func New(variant string, cfg core.Config, opts ...Option) (*Game, error) {
	v, ok := core.Lookup(variant)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q: %w", variant, core.ErrInvalidConfig)
	}
	cfg, err := cfg.Validate(v.Limits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", variant, err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	sim, err := v.New(cfg, core.NewRNG(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", variant, err)
	}

	g := &Game{
		id:      o.id,
		variant: v,
		log:     o.logger.With("game", o.id, "variant", v.Name),
		cfg:     cfg,
		sim:     sim,
	}
	g.sched = core.NewScheduler(sim, cfg.Interval, cfg.MaxIterations,
		core.WithClock(o.clock),
		core.WithStopHook(g.stopped),
	)
	g.log.Info("game created", "size", cfg.BoardSize, "interval", cfg.Interval, "seed", cfg.Seed)
	return g, nil
}

func (g *Game) stopped(reason core.StopReason, iteration int, err error) {
	if err != nil {
		g.log.Error("tick failed", "iteration", iteration, "err", err)
		return
	}
	g.log.Info("stopped", "reason", reason.String(), "iteration", iteration)
}

// ID returns the game's unique id.
func (g *Game) ID() string { return g.id }

// Variant returns the variant name.
func (g *Game) Variant() string { return g.variant.Name }

// Limits returns the bounds of the adjustable settings.
func (g *Game) Limits() core.Limits { return g.variant.Limits }

// Config returns the current configuration.
func (g *Game) Config() core.Config {
	var cfg core.Config
	_ = g.sched.Do(func(*core.Loop) error { cfg = g.cfg; return nil })
	return cfg
}

// Start begins ticking. Starting a running game is a no-op.
func (g *Game) Start() error {
	return g.sched.Do(func(l *core.Loop) error {
		if l.Running() {
			return nil
		}
		if err := l.Start(); err != nil {
			return err
		}
		g.log.Info("started", "iteration", l.Iteration())
		return nil
	})
}

// Pause stops ticking; no tick runs after Pause returns.
func (g *Game) Pause() error { return g.sched.Pause() }

// Stop stops ticking.
func (g *Game) Stop() error { return g.sched.Stop() }

// Step applies a single tick, running or not.
func (g *Game) Step() error { return g.sched.Step() }

// Reset stops the game, rebuilds the board and zeroes the iteration count.
func (g *Game) Reset() error {
	return g.sched.Do(func(l *core.Loop) error {
		l.Reset()
		if err := g.sim.Reset(g.cfg.BoardSize); err != nil {
			return err
		}
		g.log.Info("reset", "size", g.cfg.BoardSize)
		return nil
	})
}

// SetBoardSize resizes the board, which resets the game. Sizes off the step
// round up to it; sizes outside the limits are rejected. It returns the size
// applied.
func (g *Game) SetBoardSize(n int) (int, error) {
	var size int
	err := g.sched.Do(func(l *core.Loop) error {
		var err error
		size, err = g.variant.Limits.BoardSize.Normalize(n)
		if err != nil {
			return fmt.Errorf("board size: %w", err)
		}
		l.Reset()
		if err := g.sim.Reset(size); err != nil {
			return err
		}
		g.cfg.BoardSize = size
		g.log.Info("resized", "size", size)
		return nil
	})
	return size, err
}

// SetInterval changes the tick period, restarting the ticker if running. The
// period is snapped to the variant's step in whole milliseconds. It returns
// the period applied.
func (g *Game) SetInterval(d time.Duration) (time.Duration, error) {
	var applied time.Duration
	err := g.sched.Do(func(l *core.Loop) error {
		ms, err := g.variant.Limits.IntervalMs.Normalize(int(d / time.Millisecond))
		if err != nil {
			return fmt.Errorf("interval ms: %w", err)
		}
		applied = time.Duration(ms) * time.Millisecond
		if err := l.SetInterval(applied); err != nil {
			return err
		}
		g.cfg.Interval = applied
		g.log.Debug("interval changed", "interval", applied, "running", l.Running())
		return nil
	})
	return applied, err
}

// ToggleCell flips a single cell. Only Life supports it.
func (g *Game) ToggleCell(col, row int) error {
	return g.sched.Do(func(*core.Loop) error {
		t, ok := g.sim.(core.Toggler)
		if !ok {
			return fmt.Errorf("toggle cell on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		return t.Toggle(col, row)
	})
}

// CellAlive reports whether the cell at (col, row) is alive. Only Life
// supports it.
func (g *Game) CellAlive(col, row int) (bool, error) {
	var alive bool
	err := g.sched.Do(func(*core.Loop) error {
		cs, ok := g.sim.(core.CellSetter)
		if !ok {
			return fmt.Errorf("cell state on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		var err error
		alive, err = cs.Alive(col, row)
		return err
	})
	return alive, err
}

// SetCell paints a single cell alive or dead and reports whether it changed.
// Only Life supports it.
func (g *Game) SetCell(col, row int, alive bool) (bool, error) {
	var changed bool
	err := g.sched.Do(func(*core.Loop) error {
		cs, ok := g.sim.(core.CellSetter)
		if !ok {
			return fmt.Errorf("set cell on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		var err error
		changed, err = cs.SetCell(col, row, alive)
		return err
	})
	return changed, err
}

// ToggleUntouchedCellBehavior cycles the turn taken on unvisited cells and
// returns the new rule. Only the ant supports it.
func (g *Game) ToggleUntouchedCellBehavior() (core.Turn, error) {
	var turn core.Turn
	err := g.sched.Do(func(*core.Loop) error {
		t, ok := g.sim.(core.UntouchedToggler)
		if !ok {
			return fmt.Errorf("toggle untouched on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		turn = t.ToggleUntouched()
		g.cfg.UntouchedTurn = turn
		return nil
	})
	return turn, err
}

// ToggleColorMode re-rolls or switches the display colors.
func (g *Game) ToggleColorMode() error {
	return g.sched.Do(func(*core.Loop) error {
		r, ok := g.sim.(core.Recolorer)
		if !ok {
			return fmt.Errorf("color mode on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		r.Recolor()
		return nil
	})
}

// Randomize resets the game and fills the board at a density drawn from
// density. A zero range uses the configured one.
func (g *Game) Randomize(density core.Range) error {
	return g.sched.Do(func(l *core.Loop) error {
		if density == (core.Range{}) {
			density = g.cfg.Density
		}
		if !density.Valid() {
			return fmt.Errorf("density [%g,%g]: %w", density.Min, density.Max, core.ErrInvalidConfig)
		}
		l.Reset()
		if err := g.sim.Randomize(density); err != nil {
			return err
		}
		g.log.Info("randomized", "density_min", density.Min, "density_max", density.Max)
		return nil
	})
}

// CellDisplayValue returns the palette index of the cell at (col, row).
func (g *Game) CellDisplayValue(col, row int) (uint8, error) {
	var v uint8
	err := g.sched.Do(func(*core.Loop) error {
		var err error
		v, err = g.sim.Display(col, row)
		return err
	})
	return v, err
}

// LivingCells returns the live-cell count. Only Life tracks one.
func (g *Game) LivingCells() (int, error) {
	var n int
	err := g.sched.Do(func(*core.Loop) error {
		lc, ok := g.sim.(core.LivingCounter)
		if !ok {
			return fmt.Errorf("living cells on %s: %w", g.variant.Name, core.ErrUnsupported)
		}
		n = lc.Living()
		return nil
	})
	return n, err
}

// Iteration returns the ticks applied since the last reset.
func (g *Game) Iteration() int { return g.sched.Iteration() }

// Running reports whether the game is ticking.
func (g *Game) Running() bool { return g.sched.Running() }

// Err returns the tick error that halted the game, if any.
func (g *Game) Err() error { return g.sched.Err() }

// Snapshot copies the current board for rendering.
func (g *Game) Snapshot() Frame {
	var f Frame
	_ = g.sched.Do(func(l *core.Loop) error {
		f = Frame{
			Size:      g.sim.Size(),
			Cells:     append([]uint8(nil), g.sim.Cells()...),
			Palette:   g.sim.Palette(),
			Iteration: l.Iteration(),
			Running:   l.Running(),
		}
		if a, ok := g.sim.(core.AgentLocator); ok {
			at := a.AgentAt()
			f.Agent = &at
		}
		return nil
	})
	return f
}

// Close stops the scheduler goroutine. Commands issued afterwards return
// core.ErrClosed.
func (g *Game) Close() error {
	err := g.sched.Close()
	g.log.Info("closed")
	return err
}
