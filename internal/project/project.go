// Package project reads and writes animation project files: an ordered frame
// sequence serialized as rows of bitstrings, plus the effect and speed
// settings the device send path needs.
package project

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/coreman2200/ledpad/internal/device"
	"github.com/coreman2200/ledpad/internal/grid"
)

// Version is the current project file format version.
const Version = 1

var (
	// ErrNoFrames is returned when a project holds no frame data.
	ErrNoFrames = errors.New("project: no frame data")
	// ErrFrameHeight is returned when a frame's row count is not grid.Height.
	ErrFrameHeight = errors.New("project: invalid frame height")
	// ErrFrameWidth is returned when a row's length is not grid.Width.
	ErrFrameWidth = errors.New("project: invalid frame width")
)

// Image holds the animation side of a project.
type Image struct {
	Frames [][]string    `json:"frames"`
	Effect device.Effect `json:"effect"`
	Speed  int           `json:"speed"`
}

// Text holds the scrolling-text side of a project.
type Text struct {
	Content  string        `json:"content"`
	Effect   device.Effect `json:"effect"`
	Speed    int           `json:"speed"`
	TwoLines bool          `json:"two_lines"`
}

// File is the on-disk project structure.
type File struct {
	Version      int   `json:"version"`
	Tab          int   `json:"tab"`
	CurrentFrame int   `json:"current_frame"`
	Image        Image `json:"image"`
	Text         Text  `json:"text"`
}

// MarshalFrames serializes frames as rows of '0'/'1' strings, row-major,
// '1' meaning lit.
func MarshalFrames(frames []grid.Grid) [][]string {
	out := make([][]string, len(frames))
	for i, f := range frames {
		rows := make([]string, grid.Height)
		for y := 0; y < grid.Height; y++ {
			b := make([]byte, grid.Width)
			for x := 0; x < grid.Width; x++ {
				if f.Get(x, y) {
					b[x] = '1'
				} else {
					b[x] = '0'
				}
			}
			rows[y] = string(b)
		}
		out[i] = rows
	}
	return out
}

// UnmarshalFrames parses rows of bitstrings back into frames. It fails on an
// empty frame list or any dimension mismatch, and on failure no partial
// result is returned: the sequence either fully parses or not at all.
func UnmarshalFrames(data [][]string) ([]grid.Grid, error) {
	if len(data) == 0 {
		return nil, ErrNoFrames
	}
	frames := make([]grid.Grid, len(data))
	for i, rows := range data {
		if len(rows) != grid.Height {
			return nil, errors.Wrapf(ErrFrameHeight, "frame %d has %d rows", i, len(rows))
		}
		var f grid.Grid
		for y, row := range rows {
			if len(row) != grid.Width {
				return nil, errors.Wrapf(ErrFrameWidth, "frame %d row %d has %d cells", i, y, len(row))
			}
			for x := 0; x < grid.Width; x++ {
				f.Set(x, y, row[x] == '1')
			}
		}
		frames[i] = f
	}
	return frames, nil
}

// Load reads and validates a project file. The frame payload is parsed up
// front so a structurally broken file is rejected before the caller touches
// any state.
func Load(path string) (*File, []grid.Grid, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read project")
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, nil, errors.Wrap(err, "parse project")
	}
	frames, err := UnmarshalFrames(f.Image.Frames)
	if err != nil {
		return nil, nil, err
	}
	if f.CurrentFrame < 0 {
		f.CurrentFrame = 0
	}
	if f.CurrentFrame >= len(frames) {
		f.CurrentFrame = len(frames) - 1
	}
	f.Image.Speed = clampSpeed(f.Image.Speed)
	f.Text.Speed = clampSpeed(f.Text.Speed)
	return &f, frames, nil
}

// Save writes the project file with the frame payload taken from frames.
func Save(path string, f *File, frames []grid.Grid) error {
	f.Version = Version
	f.Image.Frames = MarshalFrames(frames)
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode project")
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "write project")
	}
	return nil
}

func clampSpeed(v int) int {
	if v < 1 {
		return 1
	}
	if v > 3500 {
		return 3500
	}
	return v
}
