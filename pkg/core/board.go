package core

import "fmt"

// Board stores a square toroidal grid of cells in row-major order.
type Board[T any] struct {
	size  int
	cells []T
}

// NewBoard allocates a size*size board. init supplies the starting value for
// every coordinate; a nil init leaves cells at their zero value.
func NewBoard[T any](size int, init func(col, row int) T) (*Board[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("board size %d: %w", size, ErrInvalidConfig)
	}
	b := &Board[T]{size: size, cells: make([]T, size*size)}
	if init != nil {
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				b.cells[row*size+col] = init(col, row)
			}
		}
	}
	return b, nil
}

// Size returns the side length of the board.
func (b *Board[T]) Size() int { return b.size }

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board[T]) Cells() []T { return b.cells }

// Index returns the linear slice index for coordinates (col, row).
func (b *Board[T]) Index(col, row int) int { return row*b.size + col }

// Contains reports whether (col, row) lies on the board.
func (b *Board[T]) Contains(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board[T]) Wrap(col, row int) (int, int) {
	return wrap(col, b.size), wrap(row, b.size)
}

// Get returns the value at (col, row). Callers wrap coordinates first.
func (b *Board[T]) Get(col, row int) (T, error) {
	if !b.Contains(col, row) {
		var zero T
		return zero, fmt.Errorf("get (%d,%d) on %dx%d board: %w", col, row, b.size, b.size, ErrOutOfRange)
	}
	return b.cells[row*b.size+col], nil
}

// Set overwrites the value at (col, row).
func (b *Board[T]) Set(col, row int, v T) error {
	if !b.Contains(col, row) {
		return fmt.Errorf("set (%d,%d) on %dx%d board: %w", col, row, b.size, b.size, ErrOutOfRange)
	}
	b.cells[row*b.size+col] = v
	return nil
}

// Fill overwrites every cell with v.
func (b *Board[T]) Fill(v T) {
	for i := range b.cells {
		b.cells[i] = v
	}
}

// Clone returns a deep copy of the board.
func (b *Board[T]) Clone() *Board[T] {
	c := &Board[T]{size: b.size, cells: make([]T, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom overwrites b with the contents of src, reallocating only when the
// sizes differ.
func (b *Board[T]) CopyFrom(src *Board[T]) {
	if len(b.cells) != len(src.cells) {
		b.cells = make([]T, len(src.cells))
	}
	b.size = src.size
	copy(b.cells, src.cells)
}

func wrap(v, size int) int {
	return (v%size + size) % size
}
