package editor

import "github.com/coreman2200/ledpad/internal/grid"

// placementSession is the transient state of an overlay positioning
// interaction: the immutable source buffer, its offset relative to the canvas
// origin, the frozen base canvas, and drag-gesture bookkeeping.
type placementSession struct {
	buf  grid.Buffer
	ox   int
	oy   int
	base grid.Grid

	pressed       bool
	pressX        int
	pressY        int
	offsetAtPress [2]int
	dragged       bool
}

// offsetRange is the clamping law: for a source dimension s over a grid
// dimension g the legal offsets are [-s+1, g-1], the extremes at which
// exactly one row or column of the source still overlaps the grid.
func offsetRange(src, grid int) (int, int) {
	return -src + 1, grid - 1
}

func clampOffset(v, src, grid int) int {
	lo, hi := offsetRange(src, grid)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StartPlacement opens an overlay session for buf, centered on the grid. The
// canvas freezes for the duration of the session: raw draw input and bulk
// transforms are intercepted until FinalizePlacement or AbandonPlacement.
// Starting a new session while one is active replaces the overlay but keeps
// composing against the same frozen base.
func (e *Editor) StartPlacement(buf grid.Buffer) error {
	if buf.Empty() {
		return grid.ErrEmptyBuffer
	}
	base := e.canvas.Snapshot()
	if e.placement != nil {
		base = e.placement.base
	}
	p := &placementSession{buf: buf, base: base}
	p.ox = clampOffset((grid.Width-buf.Width())/2, buf.Width(), grid.Width)
	p.oy = clampOffset((grid.Height-buf.Height())/2, buf.Height(), grid.Height)
	e.placement = p
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
	return nil
}

// PlacementActive reports whether an overlay session is live.
func (e *Editor) PlacementActive() bool {
	return e.placement != nil
}

// PlacementOffset returns the overlay's current offset. Zero while no
// session is active.
func (e *Editor) PlacementOffset() (int, int) {
	if e.placement == nil {
		return 0, 0
	}
	return e.placement.ox, e.placement.oy
}

// SetPlacementOffset moves the overlay, clamping each axis independently per
// the offset law. Silently ignored while no session is active.
func (e *Editor) SetPlacementOffset(x, y int) {
	p := e.placement
	if p == nil {
		return
	}
	x = clampOffset(x, p.buf.Width(), grid.Width)
	y = clampOffset(y, p.buf.Height(), grid.Height)
	if x == p.ox && y == p.oy {
		return
	}
	p.ox, p.oy = x, y
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
}

// PlacementPress starts tracking a drag gesture at the given cell.
func (e *Editor) PlacementPress(cellX, cellY int) {
	p := e.placement
	if p == nil {
		return
	}
	p.pressed = true
	p.pressX, p.pressY = cellX, cellY
	p.offsetAtPress = [2]int{p.ox, p.oy}
	p.dragged = false
}

// PlacementDrag moves the overlay by the delta accumulated since the press.
// Any non-zero delta marks the gesture as a drag, so the following release
// will not confirm.
func (e *Editor) PlacementDrag(cellX, cellY int) {
	p := e.placement
	if p == nil || !p.pressed {
		return
	}
	dx, dy := cellX-p.pressX, cellY-p.pressY
	if dx != 0 || dy != 0 {
		p.dragged = true
	}
	e.SetPlacementOffset(p.offsetAtPress[0]+dx, p.offsetAtPress[1]+dy)
}

// PlacementRelease ends the drag gesture. A release without any accumulated
// drag delta is a confirm: the overlay is composited into the canvas and the
// composed frame returned with confirmed=true. After a drag the session just
// stays live at the new offset.
func (e *Editor) PlacementRelease() (composed grid.Grid, confirmed bool, err error) {
	p := e.placement
	if p == nil {
		return grid.Grid{}, false, ErrNoPlacement
	}
	p.pressed = false
	if p.dragged {
		p.dragged = false
		return grid.Grid{}, false, nil
	}
	g, err := e.FinalizePlacement()
	return g, err == nil, err
}

// FinalizePlacement composites the overlay into the frozen base at the
// current offset and writes the result to the canvas. Overlay pixels always
// win inside their footprint, including unlit ones erasing base content. The
// session ends and the composed frame is returned.
func (e *Editor) FinalizePlacement() (grid.Grid, error) {
	p := e.placement
	if p == nil {
		return grid.Grid{}, ErrNoPlacement
	}
	composed := p.base.Snapshot()
	for y := 0; y < p.buf.Height(); y++ {
		for x := 0; x < p.buf.Width(); x++ {
			composed.Set(x+p.ox, y+p.oy, p.buf.Get(x, y))
		}
	}
	e.placement = nil
	if e.canvas.Restore(composed) {
		e.canvasMutated()
	} else {
		// Composition may be a no-op; the stored frame is already current.
		e.frames[e.cur] = e.canvas.Snapshot()
	}
	return composed, nil
}

// AbandonPlacement ends the session without compositing and discards any
// gesture opened for it.
func (e *Editor) AbandonPlacement() error {
	if e.placement == nil {
		return ErrNoPlacement
	}
	e.placement = nil
	e.pending = nil
	if e.hooks.PlacementCanceled != nil {
		e.hooks.PlacementCanceled()
	}
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
	return nil
}
