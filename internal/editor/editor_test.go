package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/ledpad/internal/grid"
)

func TestNewStartsWithOneBlankFrame(t *testing.T) {
	e := New(Hooks{})
	assert.Equal(t, 1, e.FrameCount())
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, ModeIdle, e.Mode())
	assert.Equal(t, 0, e.Canvas().LitCount())
}

func TestSetPixelUpdatesFrameAndHook(t *testing.T) {
	changed := 0
	e := New(Hooks{Changed: func() { changed++ }})

	e.SetPixel(3, 4, true)
	assert.True(t, e.PixelAt(3, 4))
	f0 := e.Frame(0)
	assert.True(t, f0.Get(3, 4), "stored frame follows the canvas")
	assert.Equal(t, 1, changed)

	// Writing the same value is not a mutation.
	e.SetPixel(3, 4, true)
	assert.Equal(t, 1, changed)

	// Boundary input no-ops silently.
	e.SetPixel(-1, 0, true)
	e.SetPixel(grid.Width, 0, true)
	assert.Equal(t, 1, changed)
}

func TestTransformsAreSingleActions(t *testing.T) {
	e := New(Hooks{})
	e.BeginAction()
	e.SetPixel(0, 0, true)
	e.SetPixel(1, 0, true)
	e.EndAction()
	require.Equal(t, 1, e.HistoryLen())

	require.NoError(t, e.Invert())
	assert.Equal(t, 2, e.HistoryLen())
	assert.Equal(t, grid.Width*grid.Height-2, e.Canvas().LitCount())

	require.NoError(t, e.Clear())
	assert.Equal(t, 3, e.HistoryLen())
	assert.Equal(t, 0, e.Canvas().LitCount())

	// Clearing a blank canvas has no effect and logs nothing.
	require.NoError(t, e.Clear())
	assert.Equal(t, 3, e.HistoryLen())
}

func TestMirrorActions(t *testing.T) {
	e := New(Hooks{})
	e.BeginAction()
	e.SetPixel(0, 0, true)
	e.EndAction()

	require.NoError(t, e.MirrorH())
	assert.True(t, e.PixelAt(grid.Width-1, 0))
	assert.False(t, e.PixelAt(0, 0))

	require.NoError(t, e.MirrorV())
	assert.True(t, e.PixelAt(grid.Width-1, grid.Height-1))

	assert.Equal(t, 3, e.HistoryLen())
}

func TestCanvasReturnsCopy(t *testing.T) {
	e := New(Hooks{})
	e.SetPixel(5, 5, true)
	c := e.Canvas()
	c.Set(5, 5, false)
	assert.True(t, e.PixelAt(5, 5), "Canvas must return an independent copy")
}
