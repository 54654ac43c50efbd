package core

// Coord addresses a single cell.
type Coord struct {
	Col, Row int
}

// Neighbors returns the eight Moore-neighborhood coordinates of (col, row) on
// a size*size torus, scanned row-major over offsets -1..1 with the center
// skipped. On boards smaller than 3 some entries coincide.
func Neighbors(size, col, row int) [8]Coord {
	var out [8]Coord
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = Coord{Col: wrap(col+dx, size), Row: wrap(row+dy, size)}
			i++
		}
	}
	return out
}

// Tally folds accumulate over the eight wrapped neighbors of (col, row),
// threading the running totals through each call.
func Tally[T, R any](b *Board[T], col, row int, accumulate func(v T, totals R) R, initial R) R {
	totals := initial
	size := b.size
	for dy := -1; dy <= 1; dy++ {
		ny := wrap(row+dy, size)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := wrap(col+dx, size)
			totals = accumulate(b.cells[ny*size+nx], totals)
		}
	}
	return totals
}
