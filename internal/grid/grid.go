// Package grid implements the fixed-size boolean pixel field edited by the
// animation editor, plus arbitrary-size rectangular buffers used as overlay
// and glyph sources.
package grid

// Width and Height are the dimensions of the LED matrix. They never change
// after construction; every Grid is exactly this size.
const (
	Width  = 48
	Height = 12
)

// Grid is one Width x Height field of lit/unlit cells. The zero value is all
// unlit. Grid is a value type: assignment, Snapshot and function returns all
// produce independent copies, so history snapshots never alias live state.
type Grid struct {
	cells [Height][Width]bool
}

// New returns an all-unlit grid.
func New() Grid {
	return Grid{}
}

// Get reports whether the cell at (x, y) is lit. Out-of-bounds reads are
// unlit.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g.cells[y][x]
}

// Set writes one cell and reports whether the grid changed. Writes outside
// the grid are ignored; they arise naturally from boundary input.
func (g *Grid) Set(x, y int, v bool) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	if g.cells[y][x] == v {
		return false
	}
	g.cells[y][x] = v
	return true
}

// SetAll writes every cell and reports whether anything changed.
func (g *Grid) SetAll(v bool) bool {
	changed := false
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.cells[y][x] != v {
				g.cells[y][x] = v
				changed = true
			}
		}
	}
	return changed
}

// Invert flips every cell. It always changes the grid.
func (g *Grid) Invert() bool {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.cells[y][x] = !g.cells[y][x]
		}
	}
	return true
}

// MirrorH reverses every row and reports whether the grid changed.
func (g *Grid) MirrorH() bool {
	m := *g
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			m.cells[y][x] = g.cells[y][Width-1-x]
		}
	}
	if m.cells == g.cells {
		return false
	}
	g.cells = m.cells
	return true
}

// MirrorV reverses the row order and reports whether the grid changed.
func (g *Grid) MirrorV() bool {
	m := *g
	for y := 0; y < Height; y++ {
		m.cells[y] = g.cells[Height-1-y]
	}
	if m.cells == g.cells {
		return false
	}
	g.cells = m.cells
	return true
}

// Snapshot returns a deep copy of the grid.
func (g *Grid) Snapshot() Grid {
	return *g
}

// Restore overwrites the grid from a snapshot and reports whether it changed.
func (g *Grid) Restore(s Grid) bool {
	if g.cells == s.cells {
		return false
	}
	g.cells = s.cells
	return true
}

// Equal reports whether two grids hold identical cells.
func (g Grid) Equal(o Grid) bool {
	return g.cells == o.cells
}

// Translated returns the grid shifted by (dx, dy) with hard clipping: cells
// shifted past the edge are lost, cells shifted in from outside are unlit.
// There is no wraparound.
func (g Grid) Translated(dx, dy int) Grid {
	var out Grid
	for y := 0; y < Height; y++ {
		sy := y - dy
		if sy < 0 || sy >= Height {
			continue
		}
		for x := 0; x < Width; x++ {
			sx := x - dx
			if sx < 0 || sx >= Width {
				continue
			}
			out.cells[y][x] = g.cells[sy][sx]
		}
	}
	return out
}

// Rows returns the grid as freshly allocated rows of cells.
func (g Grid) Rows() [][]bool {
	rows := make([][]bool, Height)
	for y := 0; y < Height; y++ {
		row := make([]bool, Width)
		copy(row, g.cells[y][:])
		rows[y] = row
	}
	return rows
}

// LitCount returns the number of lit cells.
func (g Grid) LitCount() int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.cells[y][x] {
				n++
			}
		}
	}
	return n
}
