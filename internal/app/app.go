//go:build ebiten

package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridgames/internal/control"
	"gridgames/internal/render"
	"gridgames/internal/ui"
	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 220

// Game adapts a game.Game to the ebiten.Game interface. The simulation ticks
// on its own scheduler; Update only forwards input and Draw only reads
// snapshots.
type Game struct {
	game    *game.Game
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale int
	frame game.Frame
	brush control.Brush
}

var keys = map[ebiten.Key]control.Action{
	ebiten.KeyQ:            control.Quit,
	ebiten.KeyEscape:       control.Quit,
	ebiten.KeySpace:        control.ToggleRun,
	ebiten.KeyEnter:        control.Resume,
	ebiten.KeyN:            control.StepOnce,
	ebiten.KeyR:            control.Reset,
	ebiten.KeyX:            control.Randomize,
	ebiten.KeyC:            control.ColorMode,
	ebiten.KeyU:            control.Untouched,
	ebiten.KeyEqual:        control.Grow,
	ebiten.KeyMinus:        control.Shrink,
	ebiten.KeyBracketRight: control.Slower,
	ebiten.KeyBracketLeft:  control.Faster,
}

// New constructs a Game for the provided simulation.
func New(g *game.Game, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	frame := g.Snapshot()
	return &Game{
		game:    g,
		painter: render.NewGridPainter(frame.Size.W, frame.Size.H),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(g, HUDWidth),
		scale:   scale,
		frame:   frame,
	}
}

// Update handles per-frame input.
func (a *Game) Update() error {
	for k, action := range keys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		err := control.Apply(a.game, action)
		switch {
		case errors.Is(err, control.ErrQuit):
			return ebiten.Termination
		case errors.Is(err, core.ErrClosed):
			return err
		}
	}

	a.paint()

	a.overlay.Update()
	a.hud.Update(a.frame.Size.W * a.scale)
	a.frame = a.game.Snapshot()
	return nil
}

// paint drives the brush from the left mouse button. A press outside the
// board does not start a stroke.
func (a *Game) paint() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.brush.Release()
		return
	}
	x, y := ebiten.CursorPosition()
	col, row, ok := render.CellAt(x, y, a.scale, a.frame.Size.W)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if ok {
			_ = a.brush.Press(a.game, col, row)
		}
	case ok && a.brush.Held() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		_ = a.brush.Drag(a.game, col, row)
	}
}

// Draw renders the latest snapshot.
func (a *Game) Draw(screen *ebiten.Image) {
	a.painter.Blit(screen, a.frame, a.scale)
	a.overlay.Draw(screen, a.frame, a.scale)
	a.hud.Draw(screen, a.frame.Size.W*a.scale, a.frame.Size.H*a.scale)
}

// Layout returns the logical screen size, which follows board resizes.
func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.frame.Size.W*a.scale + a.hud.Width(), a.frame.Size.H * a.scale
}
