package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	pal := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, pal)
	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels = %v, expected %v", buf, want)
	}

	fillPaletteRGBA(buf, cells, nil)
	if slices.ContainsFunc(buf, func(b byte) bool { return b != 0 }) {
		t.Fatalf("empty palette left pixels %v", buf)
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y, scale, size int
		col, row          int
		ok                bool
	}{
		{0, 0, 4, 10, 0, 0, true},
		{39, 7, 4, 10, 9, 1, true},
		{40, 0, 4, 10, 0, 0, false},
		{-1, 3, 4, 10, 0, 0, false},
		{5, 5, 0, 10, 5, 5, true},
	}
	for _, c := range cases {
		col, row, ok := CellAt(c.x, c.y, c.scale, c.size)
		if ok != c.ok || (ok && (col != c.col || row != c.row)) {
			t.Fatalf("CellAt(%d,%d,%d,%d) = (%d,%d,%v), expected (%d,%d,%v)",
				c.x, c.y, c.scale, c.size, col, row, ok, c.col, c.row, c.ok)
		}
	}
}
