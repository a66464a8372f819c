package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/ledpad/internal/device"
	"github.com/coreman2200/ledpad/internal/grid"
)

func TestMarshalUnmarshalFrames(t *testing.T) {
	a := grid.New()
	a.Set(0, 0, true)
	a.Set(grid.Width-1, grid.Height-1, true)
	b := grid.New()
	b.Invert()

	rows := MarshalFrames([]grid.Grid{a, b})
	require.Len(t, rows, 2)
	require.Len(t, rows[0], grid.Height)
	assert.Equal(t, byte('1'), rows[0][0][0])
	assert.Equal(t, byte('0'), rows[0][0][1])
	assert.Equal(t, strings.Repeat("1", grid.Width), rows[1][3])

	got, err := UnmarshalFrames(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(a))
	assert.True(t, got[1].Equal(b))
}

func TestUnmarshalFramesAllOrNothing(t *testing.T) {
	_, err := UnmarshalFrames(nil)
	assert.ErrorIs(t, err, ErrNoFrames)

	good := MarshalFrames([]grid.Grid{grid.New()})[0]

	short := append([]string{}, good[:grid.Height-1]...)
	frames, err := UnmarshalFrames([][]string{good, short})
	assert.Nil(t, frames, "a bad frame poisons the whole parse")
	assert.ErrorIs(t, errors.Cause(err), ErrFrameHeight)

	bad := make([]string, grid.Height)
	copy(bad, good)
	bad[5] = "0101"
	frames, err = UnmarshalFrames([][]string{bad})
	assert.Nil(t, frames)
	assert.ErrorIs(t, errors.Cause(err), ErrFrameWidth)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.json")

	a := grid.New()
	a.Set(5, 5, true)
	b := grid.New()
	b.Set(6, 6, true)

	f := &File{
		CurrentFrame: 1,
		Image:        Image{Effect: device.EffectScrollLeft, Speed: 250},
		Text:         Text{Content: "hi", Effect: device.EffectNone, Speed: 100},
	}
	require.NoError(t, Save(path, f, []grid.Grid{a, b}))

	got, frames, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Version, got.Version)
	assert.Equal(t, 1, got.CurrentFrame)
	assert.Equal(t, device.EffectScrollLeft, got.Image.Effect)
	assert.Equal(t, 250, got.Image.Speed)
	assert.Equal(t, "hi", got.Text.Content)
	require.Len(t, frames, 2)
	assert.True(t, frames[0].Equal(a))
	assert.True(t, frames[1].Equal(b))
}

func TestLoadClampsCursorAndSpeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.json")
	f := &File{
		CurrentFrame: 42,
		Image:        Image{Speed: 999999},
		Text:         Text{Speed: -3},
	}
	require.NoError(t, Save(path, f, []grid.Grid{grid.New()}))

	got, frames, err := Load(path)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, 0, got.CurrentFrame)
	assert.Equal(t, 3500, got.Image.Speed)
	assert.Equal(t, 1, got.Text.Speed)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, writeFile(bad, "{not json"))
	_, _, err = Load(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, writeFile(empty, `{"version":1,"image":{"frames":[]}}`))
	_, _, err = Load(empty)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body), 0644)
}
