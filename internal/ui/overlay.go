//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gridgames/internal/control"
	"gridgames/pkg/core"
	"gridgames/pkg/game"
)

// Overlay outlines the ant and shows key bindings on top of the board.
type Overlay struct {
	showAgent bool
	showHelp  bool
	pixel     *ebiten.Image
	help      string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showAgent: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	var parts []string
	for _, b := range control.Help() {
		parts = append(parts, b.Key+" "+b.Action.String())
	}
	o.help = strings.Join(parts, "  ")
	return o
}

// Update toggles the overlay layers: 1 for the agent outline, H for help.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAgent = !o.showAgent
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay for frame f drawn at scale.
func (o *Overlay) Draw(screen *ebiten.Image, f game.Frame, scale int) {
	if scale <= 0 {
		scale = 1
	}
	if o.showAgent && f.Agent != nil {
		o.outline(screen, *f.Agent, scale, color.RGBA{R: 255, G: 255, B: 255, A: 220})
	}
	if o.showHelp {
		h := f.Size.H * scale
		o.fill(screen, 0, float64(h-20), float64(f.Size.W*scale), 20, color.RGBA{A: 180})
		text.Draw(screen, o.help, basicfont.Face7x13, 4, h-6, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) outline(screen *ebiten.Image, at core.Coord, scale int, col color.RGBA) {
	s := float64(scale)
	x, y := float64(at.Col)*s, float64(at.Row)*s
	t := s / 4
	if t < 1 {
		t = 1
	}
	o.fill(screen, x-t, y-t, s+2*t, t, col)
	o.fill(screen, x-t, y+s, s+2*t, t, col)
	o.fill(screen, x-t, y, t, s, col)
	o.fill(screen, x+s, y, t, s, col)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
