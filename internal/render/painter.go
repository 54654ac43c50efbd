//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"gridgames/pkg/game"
)

// GridPainter uploads palette-indexed frames into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the frame into the painter image and draws it scaled. The
// image is reallocated when the board was resized.
func (gp *GridPainter) Blit(dst *ebiten.Image, f game.Frame, scale int) {
	if f.Size.W <= 0 || f.Size.H <= 0 || len(f.Cells) != f.Size.W*f.Size.H {
		return
	}
	if f.Size.W != gp.w || f.Size.H != gp.h {
		gp.resize(f.Size.W, f.Size.H)
	}
	fillPaletteRGBA(gp.buf, f.Cells, f.Palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
