package editor

import "github.com/coreman2200/ledpad/internal/grid"

// Cursor returns the current frame index.
func (e *Editor) Cursor() int { return e.cur }

// FrameCount returns the number of frames. Always at least one.
func (e *Editor) FrameCount() int { return len(e.frames) }

// Frames returns deep copies of every frame, current canvas state included.
// This is the sequence collaborators serialize for the device or for disk.
func (e *Editor) Frames() []grid.Grid {
	out := make([]grid.Grid, len(e.frames))
	copy(out, e.frames)
	return out
}

// Frame returns a copy of the frame at index i, or a blank grid if i is out
// of range.
func (e *Editor) Frame(i int) grid.Grid {
	if i < 0 || i >= len(e.frames) {
		return grid.New()
	}
	return e.frames[i]
}

// InsertAfterCurrent inserts a blank frame immediately after the cursor and
// moves the cursor to it. An active placement session is committed first, the
// way a frame added mid-import should carry the imported pixels. History is
// reset: entries index into the sequence by position and a structural edit
// invalidates them.
func (e *Editor) InsertAfterCurrent() error {
	if e.placement != nil {
		if _, err := e.FinalizePlacement(); err != nil {
			return err
		}
		e.EndAction()
	}
	blank := grid.New()
	e.frames = append(e.frames, grid.Grid{})
	copy(e.frames[e.cur+2:], e.frames[e.cur+1:])
	e.frames[e.cur+1] = blank
	e.cur++
	e.reloadCanvas(blank)
	e.ResetHistory()
	return nil
}

// RemoveCurrent removes the frame under the cursor. The last remaining frame
// is cleared in place instead, keeping the sequence non-empty. Either way the
// history is reset. An active placement session is implicitly canceled by the
// canvas reload.
func (e *Editor) RemoveCurrent() error {
	if len(e.frames) == 1 {
		e.frames[0] = grid.New()
		e.reloadCanvas(e.frames[0])
		e.ResetHistory()
		return nil
	}
	e.frames = append(e.frames[:e.cur], e.frames[e.cur+1:]...)
	if e.cur >= len(e.frames) {
		e.cur = len(e.frames) - 1
	}
	e.reloadCanvas(e.frames[e.cur])
	e.ResetHistory()
	return nil
}

// GoTo moves the cursor to frame i, clamped to the valid range, and reloads
// the canvas. Refused while a placement session awaits confirmation; the
// session is left untouched. Moving to the current frame is a no-op.
func (e *Editor) GoTo(i int) error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if i < 0 {
		i = 0
	}
	if i >= len(e.frames) {
		i = len(e.frames) - 1
	}
	if i == e.cur {
		return nil
	}
	e.cur = i
	e.reloadCanvas(e.frames[e.cur])
	return nil
}

// Next moves to the following frame. No-op at the end of the sequence.
func (e *Editor) Next() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if e.cur >= len(e.frames)-1 {
		return nil
	}
	e.cur++
	e.reloadCanvas(e.frames[e.cur])
	return nil
}

// Prev moves to the preceding frame. No-op at the start of the sequence.
func (e *Editor) Prev() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if e.cur == 0 {
		return nil
	}
	e.cur--
	e.reloadCanvas(e.frames[e.cur])
	return nil
}

// Advance steps to the next frame, wrapping at the end. This is the playback
// path; the shell disables editing while it runs.
func (e *Editor) Advance() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	e.cur = (e.cur + 1) % len(e.frames)
	e.reloadCanvas(e.frames[e.cur])
	return nil
}

// CopyFromPrevious copies the preceding frame onto the current one as one
// undoable action. No-op on the first frame.
func (e *Editor) CopyFromPrevious() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if e.cur == 0 {
		return nil
	}
	e.BeginAction()
	if e.canvas.Restore(e.frames[e.cur-1]) {
		e.canvasMutated()
	}
	e.EndAction()
	return nil
}

// Load replaces the whole sequence, clamping the cursor into range. An empty
// list loads a single blank frame. Any active placement session is implicitly
// canceled and the history reset.
func (e *Editor) Load(frames []grid.Grid, cursor int) {
	if len(frames) == 0 {
		frames = []grid.Grid{grid.New()}
	}
	e.frames = make([]grid.Grid, len(frames))
	copy(e.frames, frames)
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(e.frames) {
		cursor = len(e.frames) - 1
	}
	e.cur = cursor
	e.reloadCanvas(e.frames[e.cur])
	e.ResetHistory()
}
