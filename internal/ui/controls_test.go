package ui

import (
	"slices"
	"testing"

	"gridgames/pkg/core"
)

func testControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Board size", Bounds: core.Bounds{Min: 10, Max: 100, Step: 2}},
		{Key: "interval_ms", Label: "Interval (ms)", Bounds: core.Bounds{Min: 10, Max: 200, Step: 10}},
	}
}

func testSnapshot(size, interval string) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "size", Label: "Board size", Type: core.ParamTypeInt, Value: size},
			{Key: "interval_ms", Label: "Interval (ms)", Type: core.ParamTypeInt, Value: interval},
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: "running"},
		}},
		{Name: "life", Params: []core.Parameter{
			{Key: "living", Label: "Living", Type: core.ParamTypeInt, Value: "12"},
		}},
	}}
}

func TestLayoutPlacesButtonsInsidePanel(t *testing.T) {
	states := newControlStates(testControls(), 240)
	for i, s := range states {
		if s.plusRect.Max.X != 240-panelPadding {
			t.Fatalf("control %d plus button ends at %d", i, s.plusRect.Max.X)
		}
		if s.minusRect.Max.X+buttonGap != s.plusRect.Min.X {
			t.Fatalf("control %d buttons overlap", i)
		}
		if i > 0 && s.top != states[i-1].top+lineHeight {
			t.Fatalf("control %d not stacked", i)
		}
	}
}

func TestAdjustTargetClampsToBounds(t *testing.T) {
	states := newControlStates(testControls(), 240)
	refreshControlValues(states, testSnapshot("100", "10"))

	if _, ok := adjustTarget(&states[0], 1); ok {
		t.Fatal("size at max should not grow")
	}
	if v, ok := adjustTarget(&states[0], -1); !ok || v != 98 {
		t.Fatalf("shrink = %d, %v", v, ok)
	}
	if _, ok := adjustTarget(&states[1], -1); ok {
		t.Fatal("interval at min should not shrink")
	}
	if v, ok := adjustTarget(&states[1], 1); !ok || v != 20 {
		t.Fatalf("slow down = %d, %v", v, ok)
	}
}

func TestRefreshMarksMissingValues(t *testing.T) {
	states := newControlStates(testControls(), 240)
	refreshControlValues(states, testSnapshot("abc", "60"))
	if states[0].hasValue || states[0].value != "--" {
		t.Fatalf("unparseable value accepted: %+v", states[0])
	}
	if !states[1].hasValue || states[1].intValue != 60 {
		t.Fatalf("interval state %+v", states[1])
	}
	if s, _ := hitControl(states, states[0].plusRect.Min.X, states[0].plusRect.Min.Y); s != nil {
		t.Fatal("hit a control without a value")
	}
	s, dir := hitControl(states, states[1].minusRect.Min.X+1, states[1].minusRect.Min.Y+1)
	if s != &states[1] || dir != -1 {
		t.Fatalf("hit %v dir %d", s, dir)
	}
}

func TestStatusLinesSkipControls(t *testing.T) {
	states := newControlStates(testControls(), 240)
	got := statusLines(testSnapshot("60", "60"), states)
	want := []string{"State: running", "Living: 12"}
	if !slices.Equal(got, want) {
		t.Fatalf("status lines %v, expected %v", got, want)
	}
}
