package game

import (
	"strconv"
	"strings"
	"time"

	"gridgames/pkg/core"
	"gridgames/pkg/palette"
)

const (
	paramSize     = "size"
	paramInterval = "interval_ms"
)

// ParameterControls lists the settings a HUD can step with +/- buttons.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: paramSize, Label: "Board size", Bounds: g.variant.Limits.BoardSize},
		{Key: paramInterval, Label: "Interval (ms)", Bounds: g.variant.Limits.IntervalMs},
	}
}

// SetIntParameter applies a HUD adjustment. Values outside the limits are
// clamped first.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case paramSize:
		_, err := g.SetBoardSize(g.variant.Limits.BoardSize.Clamp(value))
		return err == nil
	case paramInterval:
		ms := g.variant.Limits.IntervalMs.Clamp(value)
		_, err := g.SetInterval(time.Duration(ms) * time.Millisecond)
		return err == nil
	}
	return false
}

// Parameters captures the values shown in a status panel.
func (g *Game) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	_ = g.sched.Do(func(l *core.Loop) error {
		sim := []core.Parameter{
			{Key: paramSize, Label: "Board size", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.BoardSize)},
			{Key: paramInterval, Label: "Interval (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(g.cfg.IntervalMs())},
			{Key: "iteration", Label: "Iteration", Type: core.ParamTypeInt, Value: strconv.Itoa(l.Iteration())},
			{Key: "max_iterations", Label: "Max iterations", Type: core.ParamTypeInt, Value: strconv.Itoa(l.MaxIterations())},
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: l.State().String()},
		}
		snap.Groups = append(snap.Groups, core.ParameterGroup{Name: "Simulation", Params: sim})

		var rules []core.Parameter
		if lc, ok := g.sim.(core.LivingCounter); ok {
			rules = append(rules, core.Parameter{Key: "living", Label: "Living", Type: core.ParamTypeInt, Value: strconv.Itoa(lc.Living())})
		}
		if ut, ok := g.sim.(core.UntouchedToggler); ok {
			rules = append(rules, core.Parameter{Key: "untouched", Label: "Untouched", Type: core.ParamTypeText, Value: ut.Untouched().String()})
		}
		if sr, ok := g.sim.(core.StatusReporter); ok {
			rules = append(rules, sr.Status()...)
		}
		var colors []string
		for _, c := range g.sim.Palette() {
			colors = append(colors, palette.Hex(c))
		}
		rules = append(rules, core.Parameter{Key: "palette", Label: "Colors", Type: core.ParamTypeText, Value: strings.Join(colors, " ")})
		snap.Groups = append(snap.Groups, core.ParameterGroup{Name: g.variant.Name, Params: rules})
		return nil
	})
	return snap
}
