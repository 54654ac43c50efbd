// Package control maps frontend key presses onto game commands so the GUI
// and terminal frontends share one set of bindings.
package control

import (
	"errors"
	"fmt"
	"time"

	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// Action is a frontend-independent user command.
type Action int

const (
	None Action = iota
	Quit
	ToggleRun
	Resume
	StepOnce
	Reset
	Randomize
	ColorMode
	Untouched
	Grow
	Shrink
	Slower
	Faster
)

// ErrQuit is returned by Apply for the Quit action.
var ErrQuit = errors.New("quit")

var names = map[Action]string{
	None:      "none",
	Quit:      "quit",
	ToggleRun: "start/pause",
	Resume:    "resume",
	StepOnce:  "step",
	Reset:     "reset",
	Randomize: "randomize",
	ColorMode: "colors",
	Untouched: "untouched rule",
	Grow:      "grow board",
	Shrink:    "shrink board",
	Slower:    "slower",
	Faster:    "faster",
}

func (a Action) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Binding pairs a key label with its action for help text.
type Binding struct {
	Key    string
	Action Action
}

// Runes are the character bindings shared by every frontend. Frontends add
// their own special keys (Escape, Enter, Space) on top.
var Runes = map[rune]Action{
	'q': Quit,
	' ': ToggleRun,
	'n': StepOnce,
	'r': Reset,
	'x': Randomize,
	'c': ColorMode,
	'u': Untouched,
	'+': Grow,
	'=': Grow,
	'-': Shrink,
	']': Slower,
	'[': Faster,
}

// Help lists the bindings in display order.
func Help() []Binding {
	return []Binding{
		{"space", ToggleRun},
		{"n", StepOnce},
		{"r", Reset},
		{"x", Randomize},
		{"c", ColorMode},
		{"u", Untouched},
		{"+/-", Grow},
		{"[/]", Faster},
		{"q", Quit},
	}
}

// Apply runs a on g. Variant-specific actions that do not apply return an
// error wrapping core.ErrUnsupported; callers usually ignore it.
func Apply(g *game.Game, a Action) error {
	switch a {
	case None:
		return nil
	case Quit:
		return ErrQuit
	case ToggleRun:
		if g.Running() {
			return g.Pause()
		}
		return g.Start()
	case Resume:
		return g.Start()
	case StepOnce:
		return g.Step()
	case Reset:
		return g.Reset()
	case Randomize:
		return g.Randomize(core.Range{})
	case ColorMode:
		return g.ToggleColorMode()
	case Untouched:
		_, err := g.ToggleUntouchedCellBehavior()
		return err
	case Grow, Shrink:
		b := g.Limits().BoardSize
		delta := b.Step
		if a == Shrink {
			delta = -delta
		}
		size := b.Clamp(g.Config().BoardSize + delta)
		if size == g.Config().BoardSize {
			return nil
		}
		_, err := g.SetBoardSize(size)
		return err
	case Slower, Faster:
		b := g.Limits().IntervalMs
		delta := b.Step
		if a == Faster {
			delta = -delta
		}
		ms := b.Clamp(g.Config().IntervalMs() + delta)
		if ms == g.Config().IntervalMs() {
			return nil
		}
		_, err := g.SetInterval(time.Duration(ms) * time.Millisecond)
		return err
	}
	return fmt.Errorf("action %v: %w", a, core.ErrUnsupported)
}
