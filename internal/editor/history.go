package editor

import "github.com/coreman2200/ledpad/internal/grid"

// BeginAction opens an edit gesture against the current frame, capturing its
// state as the before-snapshot. Re-entrant: a second BeginAction before
// EndAction keeps the original snapshot, which coalesces the many small
// mutations of a drag into one log entry.
func (e *Editor) BeginAction() {
	if e.pending != nil {
		return
	}
	e.pending = &pendingAction{
		frame:  e.cur,
		before: e.frames[e.cur].Snapshot(),
	}
}

// EndAction closes the open gesture. If the recorded frame's state differs
// from the before-snapshot, the redo tail is discarded and a new entry
// appended; otherwise nothing is logged. No-op when no gesture is open.
func (e *Editor) EndAction() {
	p := e.pending
	if p == nil {
		return
	}
	e.pending = nil

	var after = e.frames[p.frame]
	if p.frame == e.cur {
		// The gesture may span a frame switch; only the active frame reads
		// the live canvas.
		after = e.canvas.Snapshot()
		e.frames[p.frame] = after
	}
	if after.Equal(p.before) {
		return
	}
	e.hist = append(e.hist[:e.histPos], historyEntry{
		frame:  p.frame,
		before: p.before,
		after:  after,
	})
	e.histPos = len(e.hist)
}

// CanUndo reports whether an entry precedes the history position.
func (e *Editor) CanUndo() bool { return e.histPos > 0 }

// CanRedo reports whether undone entries remain beyond the position.
func (e *Editor) CanRedo() bool { return e.histPos < len(e.hist) }

// HistoryLen returns the number of logged entries.
func (e *Editor) HistoryLen() int { return len(e.hist) }

// Undo applies the previous entry's before-snapshot to its frame and makes
// that frame current. Refused while a placement session awaits confirmation.
func (e *Editor) Undo() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if e.histPos == 0 {
		return ErrNothingToUndo
	}
	e.histPos--
	ent := e.hist[e.histPos]
	e.pending = nil
	e.applyHistoryState(ent.frame, ent.before)
	return nil
}

// Redo re-applies the next entry's after-snapshot to its frame and makes
// that frame current. Refused while a placement session awaits confirmation.
func (e *Editor) Redo() error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	if e.histPos >= len(e.hist) {
		return ErrNothingToRedo
	}
	ent := e.hist[e.histPos]
	e.histPos++
	e.pending = nil
	e.applyHistoryState(ent.frame, ent.after)
	return nil
}

// ResetHistory clears the log and any open gesture. Called on structural
// sequence edits, whose index shifts would make logged frame indices lie.
func (e *Editor) ResetHistory() {
	e.hist = nil
	e.histPos = 0
	e.pending = nil
}

func (e *Editor) applyHistoryState(frame int, state grid.Grid) {
	if frame < 0 || frame >= len(e.frames) {
		return
	}
	e.frames[frame] = state
	e.cur = frame
	e.reloadCanvas(state)
}
