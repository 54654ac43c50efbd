package rps

import (
	"slices"
	"strconv"
	"testing"

	"gridgames/pkg/core"
)

func uniform(t *testing.T, size int, s State) *RPS {
	t.Helper()
	r, err := New(size, core.NewRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	r.Board().Fill(s)
	r.recount()
	return r
}

func TestTransitionFiresAtMostOnce(t *testing.T) {
	for s := Rock; s <= Scissors; s++ {
		for rock := 0; rock <= 8; rock++ {
			for paper := 0; rock+paper <= 8; paper++ {
				n := Counts{Rock: rock, Paper: paper, Scissors: 8 - rock - paper}
				fired := 0
				if s == Rock && n[Paper] >= Threshold {
					fired++
				}
				if s == Paper && n[Scissors] >= Threshold {
					fired++
				}
				if s == Scissors && n[Rock] >= Threshold {
					fired++
				}
				if fired > 1 {
					t.Fatalf("%v with %v fired %d conditions", s, n, fired)
				}
				got := Transition(s, n)
				if got != s && got != s.Predator() {
					t.Fatalf("%v with %v became %v", s, n, got)
				}
				if (got != s) != (fired == 1) {
					t.Fatalf("%v with %v: transition=%v but fired=%d", s, n, got, fired)
				}
			}
		}
	}
}

func TestTransitionDoesNotChain(t *testing.T) {
	// A rock surrounded by enough paper and scissors becomes paper only; the
	// scissors count is not re-evaluated against the new value.
	n := Counts{Rock: 2, Paper: 3, Scissors: 3}
	if got := Transition(Rock, n); got != Paper {
		t.Fatalf("expected paper, got %v", got)
	}
}

func TestStepReadsPreTickSnapshot(t *testing.T) {
	r := uniform(t, 6, Rock)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {3, 1}} {
		_ = r.Board().Set(c[0], c[1], Paper)
	}
	_ = r.Step()

	want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {3, 1}: true, {2, 0}: true, {2, 2}: true}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got, _ := r.Board().Get(x, y)
			if (got == Paper) != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d)=%v", x, y, got)
			}
		}
	}
	if c := r.Counts(); c[Paper] != 5 || c[Rock] != 31 || c[Scissors] != 0 {
		t.Fatalf("counts %v", c)
	}
}

func TestUniformBoardIsStable(t *testing.T) {
	r := uniform(t, 10, Scissors)
	before := slices.Clone(r.Board().Cells())
	for i := 0; i < 5; i++ {
		_ = r.Step()
	}
	if !slices.Equal(before, r.Board().Cells()) {
		t.Fatal("a board without predators must not change")
	}
	if r.Done() {
		t.Fatal("rps never terminates naturally")
	}
}

func TestResetDeterministic(t *testing.T) {
	a, _ := New(20, core.NewRNG(11))
	b, _ := New(20, core.NewRNG(11))
	if !slices.Equal(a.Board().Cells(), b.Board().Cells()) {
		t.Fatal("same seed must produce the same board")
	}
	if a.Palette()[Rock] != b.Palette()[Rock] {
		t.Fatal("same seed must produce the same colors")
	}
	seen := map[State]bool{}
	for _, s := range a.Board().Cells() {
		if s > Scissors {
			t.Fatalf("invalid state %d", s)
		}
		seen[s] = true
	}
	if len(seen) != NumStates {
		t.Fatalf("expected all states on a random 20x20 board, saw %v", seen)
	}
	total := 0
	for _, n := range a.Counts() {
		total += n
	}
	if total != 400 {
		t.Fatalf("counts sum to %d, expected 400", total)
	}
}

func TestResizeReallocates(t *testing.T) {
	r, _ := New(10, core.NewRNG(1))
	if err := r.Reset(24); err != nil {
		t.Fatal(err)
	}
	if len(r.Cells()) != 24*24 {
		t.Fatalf("cells %d, expected %d", len(r.Cells()), 24*24)
	}
	if err := r.Reset(0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestStatusMatchesCounts(t *testing.T) {
	r, err := New(10, core.NewRNG(4))
	if err != nil {
		t.Fatal(err)
	}
	counts := r.Counts()
	status := r.Status()
	if len(status) != NumStates {
		t.Fatalf("status has %d entries", len(status))
	}
	for i, p := range status {
		if p.Key != State(i).String() || p.Value != strconv.Itoa(counts[i]) {
			t.Fatalf("status %d = %+v, counts %v", i, p, counts)
		}
	}
}
