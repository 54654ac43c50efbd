package core

import (
	"errors"
	"slices"
	"testing"
)

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -2} {
		if _, err := NewBoard[bool](size, nil); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("size %d: expected ErrInvalidConfig, got %v", size, err)
		}
	}
}

func TestBoardDenseInitialization(t *testing.T) {
	b, err := NewBoard(4, func(col, row int) int { return row*10 + col })
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Cells()); got != 16 {
		t.Fatalf("expected 16 cells, got %d", got)
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v, err := b.Get(col, row)
			if err != nil {
				t.Fatalf("get (%d,%d): %v", col, row, err)
			}
			if v != row*10+col {
				t.Fatalf("cell (%d,%d)=%d, expected %d", col, row, v, row*10+col)
			}
		}
	}
}

func TestBoardOutOfRange(t *testing.T) {
	b, _ := NewBoard[bool](3, nil)
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}}
	for _, c := range coords {
		if _, err := b.Get(c[0], c[1]); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("get %v: expected ErrOutOfRange, got %v", c, err)
		}
		if err := b.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("set %v: expected ErrOutOfRange, got %v", c, err)
		}
	}
}

func TestBoardSetTouchesSingleCell(t *testing.T) {
	b, _ := NewBoard[bool](3, nil)
	if err := b.Set(1, 2, true); err != nil {
		t.Fatal(err)
	}
	for i, v := range b.Cells() {
		if v != (i == b.Index(1, 2)) {
			t.Fatalf("cell %d=%v after single set", i, v)
		}
	}
}

func TestBoardCloneIsDeep(t *testing.T) {
	b, _ := NewBoard(3, func(col, row int) int { return col })
	c := b.Clone()
	if !slices.Equal(b.Cells(), c.Cells()) {
		t.Fatal("clone must match source")
	}
	_ = b.Set(0, 0, 99)
	if v, _ := c.Get(0, 0); v == 99 {
		t.Fatal("clone shares storage with source")
	}

	snap, _ := NewBoard[int](1, nil)
	snap.CopyFrom(b)
	if snap.Size() != 3 || !slices.Equal(snap.Cells(), b.Cells()) {
		t.Fatal("CopyFrom must resize and copy")
	}
}

func TestBoardWrap(t *testing.T) {
	b, _ := NewBoard[bool](6, nil)
	cases := []struct{ in, want [2]int }{
		{[2]int{-1, -1}, [2]int{5, 5}},
		{[2]int{6, 0}, [2]int{0, 0}},
		{[2]int{3, 6}, [2]int{3, 0}},
		{[2]int{2, 2}, [2]int{2, 2}},
	}
	for _, tc := range cases {
		col, row := b.Wrap(tc.in[0], tc.in[1])
		if col != tc.want[0] || row != tc.want[1] {
			t.Fatalf("wrap %v = (%d,%d), expected %v", tc.in, col, row, tc.want)
		}
	}
}
