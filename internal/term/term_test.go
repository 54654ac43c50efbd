package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"gridgames/pkg/core"
	"gridgames/pkg/game"
	"gridgames/pkg/palette"
)

func newFrontend(t *testing.T, variant string) (*Frontend, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	cfg, err := game.DefaultConfig(variant)
	if err != nil {
		t.Fatal(err)
	}
	cfg.BoardSize = 10
	cfg.Seed = 5
	g, err := game.New(variant, cfg, game.WithClock(core.NewManualClock()))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = g.Close() })

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return New(screen, g, nil), screen, g
}

func TestDrawPaintsCellsTwoColumnsWide(t *testing.T) {
	f, screen, g := newFrontend(t, "life")
	if err := g.ToggleCell(3, 2); err != nil {
		t.Fatal(err)
	}
	f.Draw()

	cells, w, _ := screen.GetContents()
	live := toTcell(palette.Dark)
	dead := toTcell(palette.Light)
	for _, x := range []int{6, 7} {
		_, bg, _ := cells[2*w+x].Style.Decompose()
		if bg != live {
			t.Fatalf("column %d of live cell has background %v", x, bg)
		}
	}
	_, bg, _ := cells[2*w+8].Style.Decompose()
	if bg != dead {
		t.Fatalf("neighbor background %v, expected dead fill", bg)
	}
}

func TestKeysDriveGame(t *testing.T) {
	f, _, g := newFrontend(t, "rps")
	if done, err := f.Handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)); done || err != nil {
		t.Fatalf("step key: %v %v", done, err)
	}
	if g.Iteration() != 1 {
		t.Fatalf("iteration=%d", g.Iteration())
	}
	if _, err := f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if !g.Running() {
		t.Fatal("space did not start the game")
	}
	if _, err := f.Handle(tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if f.status == "" {
		t.Fatal("unsupported key left no status")
	}
	if done, _ := f.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !done {
		t.Fatal("escape did not quit")
	}
}

func TestMouseTogglesLifeCell(t *testing.T) {
	f, _, g := newFrontend(t, "life")
	if _, err := f.Handle(tcell.NewEventMouse(9, 4, tcell.Button1, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if v, _ := g.CellDisplayValue(4, 4); v != 1 {
		t.Fatalf("clicked cell display=%d", v)
	}
}

func mouse(t *testing.T, f *Frontend, x, y int, buttons tcell.ButtonMask) {
	t.Helper()
	if _, err := f.Handle(tcell.NewEventMouse(x, y, buttons, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
}

func living(t *testing.T, g *game.Game) int {
	t.Helper()
	n, err := g.LivingCells()
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestMouseDragWithinCellKeepsItAlive(t *testing.T) {
	f, _, g := newFrontend(t, "life")
	mouse(t, f, 8, 4, tcell.Button1)
	mouse(t, f, 9, 4, tcell.Button1)
	if v, _ := g.CellDisplayValue(4, 4); v != 1 {
		t.Fatalf("cell under drag display=%d, expected alive", v)
	}
	if n := living(t, g); n != 1 {
		t.Fatalf("living=%d", n)
	}
}

func TestMouseDragCreatesWithoutKillingLiveCells(t *testing.T) {
	f, _, g := newFrontend(t, "life")
	if err := g.ToggleCell(5, 4); err != nil {
		t.Fatal(err)
	}
	for x := 8; x <= 13; x++ {
		mouse(t, f, x, 4, tcell.Button1)
	}
	mouse(t, f, 13, 4, tcell.ButtonNone)
	for col := 4; col <= 6; col++ {
		if v, _ := g.CellDisplayValue(col, 4); v != 1 {
			t.Fatalf("cell (%d,4) display=%d after create stroke", col, v)
		}
	}
	if n := living(t, g); n != 3 {
		t.Fatalf("living=%d", n)
	}
}

func TestMouseDragFromLiveCellDestroys(t *testing.T) {
	f, _, g := newFrontend(t, "life")
	for col := 2; col <= 4; col++ {
		if err := g.ToggleCell(col, 1); err != nil {
			t.Fatal(err)
		}
	}
	mouse(t, f, 4, 1, tcell.Button1)
	mouse(t, f, 6, 1, tcell.Button1)
	mouse(t, f, 8, 1, tcell.Button1)
	mouse(t, f, 10, 1, tcell.Button1)
	mouse(t, f, 10, 1, tcell.ButtonNone)
	if n := living(t, g); n != 0 {
		t.Fatalf("living=%d after destroy stroke", n)
	}

	// A fresh press after release picks its mode again.
	mouse(t, f, 4, 1, tcell.Button1)
	mouse(t, f, 4, 1, tcell.ButtonNone)
	if v, _ := g.CellDisplayValue(2, 1); v != 1 {
		t.Fatalf("new press did not create, display=%d", v)
	}
}
