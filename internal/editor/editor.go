// Package editor implements the animation editing engine: a frame sequence
// with a live canvas, a shift (translate) tool, an overlay placement session
// for imported pixel data, and a linear undo/redo log of coalesced edit
// gestures.
//
// All operations are synchronous and single-threaded; the editor is meant to
// be driven from one event loop (a TUI program, a test harness) through
// direct method calls.
package editor

import (
	"errors"

	"github.com/coreman2200/ledpad/internal/grid"
)

var (
	// ErrPlacementPending is the refusal returned by operations that are
	// gated until an active placement session is confirmed or abandoned.
	ErrPlacementPending = errors.New("editor: placement awaiting confirmation")
	// ErrNoPlacement is returned by placement operations when no session is
	// active.
	ErrNoPlacement = errors.New("editor: no active placement session")
	// ErrNothingToUndo is returned by Undo at the start of history.
	ErrNothingToUndo = errors.New("editor: nothing to undo")
	// ErrNothingToRedo is returned by Redo at the end of history.
	ErrNothingToRedo = errors.New("editor: nothing to redo")
)

// Mode is the editor's current interaction state.
type Mode string

const (
	// ModeIdle means no gesture or session is open.
	ModeIdle Mode = "idle"
	// ModeDrawing means an edit gesture is open (between BeginAction and
	// EndAction) and its before-snapshot is captured.
	ModeDrawing Mode = "drawing"
	// ModePlacing means an overlay placement session is live and intercepts
	// raw draw input until confirmed or abandoned.
	ModePlacing Mode = "placing"
)

// Hooks are dependency-injected callbacks into the surrounding shell.
type Hooks struct {
	// Changed fires after every effective mutation of the live canvas.
	Changed func()
	// PlacementCanceled fires when a session ends without compositing, either
	// explicitly via AbandonPlacement or implicitly when the canvas is
	// reloaded wholesale.
	PlacementCanceled func()
}

// pendingAction is an open edit gesture: the frame it targets and the state
// of that frame when the gesture began.
type pendingAction struct {
	frame  int
	before grid.Grid
}

// historyEntry is one completed gesture whose net effect was non-empty.
type historyEntry struct {
	frame  int
	before grid.Grid
	after  grid.Grid
}

// Editor owns the frame sequence, the live canvas for the current frame, and
// the transient tool state. The frame list is never empty.
type Editor struct {
	canvas grid.Grid
	frames []grid.Grid
	cur    int

	hist    []historyEntry
	histPos int
	pending *pendingAction

	shift     *shiftDrag
	placement *placementSession

	hooks Hooks
}

// New constructs an editor holding a single blank frame.
func New(h Hooks) *Editor {
	return &Editor{
		frames: []grid.Grid{grid.New()},
		hooks:  h,
	}
}

// Mode returns the current interaction state. An open gesture inside a
// placement session reports ModePlacing; the session owns it.
func (e *Editor) Mode() Mode {
	switch {
	case e.placement != nil:
		return ModePlacing
	case e.pending != nil:
		return ModeDrawing
	default:
		return ModeIdle
	}
}

// Canvas returns a copy of the live canvas. While a placement session is
// active this is the frozen pre-session state; renderers should use PixelAt
// instead.
func (e *Editor) Canvas() grid.Grid {
	return e.canvas.Snapshot()
}

// PixelAt is the composited read for renderers. While a placement session is
// active it returns the overlay pixel inside the overlay footprint and the
// frozen base pixel elsewhere; otherwise it returns the live canvas pixel.
func (e *Editor) PixelAt(x, y int) bool {
	if p := e.placement; p != nil {
		ix, iy := x-p.ox, y-p.oy
		if ix >= 0 && ix < p.buf.Width() && iy >= 0 && iy < p.buf.Height() {
			return p.buf.Get(ix, iy)
		}
		return p.base.Get(x, y)
	}
	return e.canvas.Get(x, y)
}

// SetPixel writes one cell of the live canvas. It is a silent no-op outside
// the grid and while a placement session is active.
func (e *Editor) SetPixel(x, y int, v bool) {
	if e.placement != nil {
		return
	}
	if e.canvas.Set(x, y, v) {
		e.canvasMutated()
	}
}

// Clear unlights the whole canvas as one undoable action.
func (e *Editor) Clear() error {
	return e.transform(func(g *grid.Grid) bool { return g.SetAll(false) })
}

// Invert flips every cell as one undoable action.
func (e *Editor) Invert() error {
	return e.transform((*grid.Grid).Invert)
}

// MirrorH mirrors the canvas left-to-right as one undoable action.
func (e *Editor) MirrorH() error {
	return e.transform((*grid.Grid).MirrorH)
}

// MirrorV mirrors the canvas top-to-bottom as one undoable action.
func (e *Editor) MirrorV() error {
	return e.transform((*grid.Grid).MirrorV)
}

// transform runs a bulk canvas operation bracketed by its own begin/end
// gesture. Refused while a placement session is active.
func (e *Editor) transform(op func(*grid.Grid) bool) error {
	if e.placement != nil {
		return ErrPlacementPending
	}
	e.BeginAction()
	if op(&e.canvas) {
		e.canvasMutated()
	}
	e.EndAction()
	return nil
}

// canvasMutated keeps the stored frame in step with the live canvas and
// notifies the shell.
func (e *Editor) canvasMutated() {
	e.frames[e.cur] = e.canvas.Snapshot()
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
}

// reloadCanvas replaces the canvas backing buffer wholesale. An active
// placement session ends without compositing first.
func (e *Editor) reloadCanvas(g grid.Grid) {
	if e.placement != nil {
		e.placement = nil
		e.pending = nil
		if e.hooks.PlacementCanceled != nil {
			e.hooks.PlacementCanceled()
		}
	}
	e.shift = nil
	e.canvas = g.Snapshot()
	if e.hooks.Changed != nil {
		e.hooks.Changed()
	}
}
