package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Indices
// past the end of the palette take its last color.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// CellAt maps a screen position to a board cell for a board drawn at the
// origin with the given scale.
func CellAt(x, y, scale, size int) (col, row int, ok bool) {
	if scale <= 0 {
		scale = 1
	}
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/scale, y/scale
	if col >= size || row >= size {
		return 0, 0, false
	}
	return col, row, true
}
