package ui

import (
	"image"
	"strconv"

	"gridgames/pkg/core"
)

// Controller is the game surface the HUD reads and adjusts.
type Controller interface {
	Variant() string
	ID() string
	Parameters() core.ParameterSnapshot
	core.ParameterControlsProvider
	core.IntParameterSetter
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl, width int) []hudControlState {
	states := make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		states[i] = hudControlState{control: ctrl, value: "--"}
	}
	layoutControls(states, width)
	return states
}

func layoutControls(states []hudControlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

func refreshControlValues(states []hudControlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

// adjustTarget returns the value one step in direction, and whether it moves
// within the control's bounds.
func adjustTarget(state *hudControlState, direction int) (int, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	b := state.control.Bounds
	step := b.Step
	if step <= 0 {
		step = 1
	}
	target := b.Clamp(state.intValue + direction*step)
	return target, target != state.intValue
}

// hitControl finds the control button under (x, y) in panel coordinates.
func hitControl(states []hudControlState, x, y int) (*hudControlState, int) {
	for i := range states {
		state := &states[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return state, -1
		}
		if pointInRect(x, y, state.plusRect) {
			return state, 1
		}
	}
	return nil, 0
}

// statusLines lists the read-only parameters not already shown as controls.
func statusLines(snap core.ParameterSnapshot, states []hudControlState) []string {
	shown := map[string]bool{}
	for _, s := range states {
		shown[s.control.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if shown[p.Key] {
				continue
			}
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
