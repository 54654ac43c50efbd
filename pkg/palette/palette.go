// Package palette maps automaton state to display colors. It is a read-only
// function of game state and never mutates it.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"gridgames/pkg/core"
)

var (
	// Dark is the fill for live cells and the untouched-cell sentinel.
	Dark = color.RGBA{R: 0x22, G: 0x22, B: 0x28, A: 0xff}
	// Light is the fill for dead cells.
	Light = color.RGBA{R: 0xee, G: 0xec, B: 0xe4, A: 0xff}
	// Agent highlights the cell an agent currently occupies.
	Agent = color.RGBA{R: 0xff, G: 0x3b, B: 0x30, A: 0xff}
)

// Hue maps a live-cell count to a color whose hue grows by 20 degrees for
// every boardSize live cells, at 50% saturation and lightness.
func Hue(count, boardSize int) color.RGBA {
	if boardSize <= 0 {
		boardSize = 1
	}
	h := math.Mod(float64(count)/float64(boardSize)*20, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, 0.5, 0.5))
}

// Random returns an opaque color with each of the six hex digits drawn
// uniformly from r.
func Random(r *core.RNG) color.RGBA {
	return color.RGBA{R: uint8(r.IntN(256)), G: uint8(r.IntN(256)), B: uint8(r.IntN(256)), A: 0xff}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func fromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
