// Package font loads SLF pixel fonts and renders text lines into buffers the
// editor can place.
//
// An SLF file is JSON: a name, fixed glyph width and height, and a chars map
// keyed by character. Glyph rows use '#' (or '1') for lit and ' ' (or '.')
// for unlit; short or missing rows are padded, long ones truncated.
package font

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/ledpad/internal/grid"
)

// Ext is the font file extension.
const Ext = ".slf"

var (
	// ErrBadDimensions is returned for non-positive glyph width or height.
	ErrBadDimensions = errors.New("font: width and height must be positive")
	// ErrNoGlyphs is returned when a font file has no glyph data.
	ErrNoGlyphs = errors.New("font: missing glyph data")
)

// Font is a loaded fixed-cell pixel font.
type Font struct {
	ID     string
	Name   string
	Width  int
	Height int
	glyphs map[rune][]string // rows over {'1','.'}, normalized
}

type slfFile struct {
	Name   string              `json:"name"`
	Width  int                 `json:"width"`
	Height int                 `json:"height"`
	Chars  map[string][]string `json:"chars"`
}

// Parse reads one SLF font. The id is the caller's handle for the font,
// typically its path relative to the fonts directory.
func Parse(data []byte, id string) (*Font, error) {
	var raw slfFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "font: parse")
	}
	if raw.Width <= 0 || raw.Height <= 0 {
		return nil, ErrBadDimensions
	}
	if len(raw.Chars) == 0 {
		return nil, ErrNoGlyphs
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(id), Ext)
	}
	f := &Font{
		ID:     id,
		Name:   name,
		Width:  raw.Width,
		Height: raw.Height,
		glyphs: make(map[rune][]string, len(raw.Chars)+1),
	}
	for key, rows := range raw.Chars {
		if key == "" {
			continue
		}
		ch := []rune(key)[0]
		f.glyphs[ch] = normalizeGlyph(rows, raw.Width, raw.Height)
	}
	if _, ok := f.glyphs[' ']; !ok {
		f.glyphs[' '] = blankGlyph(raw.Width, raw.Height)
	}
	return f, nil
}

// Open reads one SLF font file.
func Open(path, id string) (*Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "font: read")
	}
	return Parse(b, id)
}

// LoadDir loads every .slf file under dir, sorted by filename. Files that
// fail to parse are skipped with a warning; one broken font should not take
// the rest down.
func LoadDir(dir string) []*Font {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var fonts []*Font
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), Ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := Open(path, name)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("font load failed")
			continue
		}
		fonts = append(fonts, f)
	}
	return fonts
}

// Glyph returns the glyph rows for ch, falling back to '?', then space, then
// any glyph at all. The rows are the font's own storage; callers must not
// mutate them.
func (f *Font) Glyph(ch rune) []string {
	if g, ok := f.glyphs[ch]; ok {
		return g
	}
	if g, ok := f.glyphs['?']; ok {
		return g
	}
	if g, ok := f.glyphs[' ']; ok {
		return g
	}
	for _, g := range f.glyphs {
		return g
	}
	return nil
}

// Render draws a single line of text into a buffer, one glyph cell per
// character, no kerning. The result feeds a placement session or the text
// preview.
func (f *Font) Render(text string) (grid.Buffer, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return grid.Buffer{}, grid.ErrEmptyBuffer
	}
	rows := make([][]bool, f.Height)
	for y := range rows {
		rows[y] = make([]bool, f.Width*len(runes))
	}
	for i, ch := range runes {
		glyph := f.Glyph(ch)
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				rows[y][i*f.Width+x] = glyph[y][x] == '1'
			}
		}
	}
	return grid.NewBuffer(rows)
}

func normalizeGlyph(rows []string, w, h int) []string {
	out := make([]string, h)
	for y := 0; y < h; y++ {
		row := ""
		if y < len(rows) {
			row = rows[y]
		}
		row = strings.NewReplacer("#", "1", " ", ".").Replace(row)
		if len(row) < w {
			row += strings.Repeat(".", w-len(row))
		} else if len(row) > w {
			row = row[:w]
		}
		out[y] = row
	}
	return out
}

func blankGlyph(w, h int) []string {
	row := strings.Repeat(".", w)
	out := make([]string, h)
	for y := range out {
		out[y] = row
	}
	return out
}
