package grid

import "errors"

// ErrEmptyBuffer is returned when a buffer with no rows or zero-width rows is
// constructed or offered to the editor.
var ErrEmptyBuffer = errors.New("grid: empty buffer")

// ErrRaggedBuffer is returned when buffer rows differ in length.
var ErrRaggedBuffer = errors.New("grid: buffer rows have unequal length")

// Buffer is an immutable rectangular field of arbitrary size. It is the
// source material for placement sessions: imported images and rendered text.
type Buffer struct {
	w, h  int
	cells [][]bool
}

// NewBuffer deep-copies rows into a Buffer. All rows must be non-empty and of
// equal length.
func NewBuffer(rows [][]bool) (Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Buffer{}, ErrEmptyBuffer
	}
	w := len(rows[0])
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Buffer{}, ErrRaggedBuffer
		}
		cells[y] = make([]bool, w)
		copy(cells[y], row)
	}
	return Buffer{w: w, h: len(rows), cells: cells}, nil
}

// Width returns the buffer width in cells.
func (b Buffer) Width() int { return b.w }

// Height returns the buffer height in cells.
func (b Buffer) Height() int { return b.h }

// Empty reports whether the buffer holds no cells.
func (b Buffer) Empty() bool { return b.w == 0 || b.h == 0 }

// Get reports whether the cell at (x, y) is lit. Out-of-bounds reads are
// unlit.
func (b Buffer) Get(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.cells[y][x]
}
