package editor

import "github.com/coreman2200/ledpad/internal/grid"

// shiftDrag is the transient state of one shift-tool gesture: the canvas as
// it was at the press, the press cell, and the last delta applied.
type shiftDrag struct {
	source grid.Grid
	startX int
	startY int
	lastDX int
	lastDY int
}

// BeginShift starts a shift gesture at the given cell, capturing the canvas
// as the translation source. Silently ignored while a placement session is
// active.
func (e *Editor) BeginShift(cellX, cellY int) {
	if e.placement != nil {
		return
	}
	e.shift = &shiftDrag{
		source: e.canvas.Snapshot(),
		startX: cellX,
		startY: cellY,
	}
}

// DragShift recomputes the canvas as the captured source translated by the
// drag delta, with hard clipping and no wraparound. A delta equal to the last
// applied one is ignored, so sub-cell mouse motion does not recompute.
func (e *Editor) DragShift(cellX, cellY int) {
	s := e.shift
	if s == nil || e.placement != nil {
		return
	}
	dx, dy := cellX-s.startX, cellY-s.startY
	if dx == s.lastDX && dy == s.lastDY {
		return
	}
	s.lastDX, s.lastDY = dx, dy
	shifted := s.source.Translated(dx, dy)
	if e.canvas.Restore(shifted) {
		e.canvasMutated()
	}
}

// EndShift releases the captured source. The canvas keeps its last shifted
// state.
func (e *Editor) EndShift() {
	e.shift = nil
}
