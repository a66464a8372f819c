// Package export renders frame sequences to image files: a PNG contact sheet
// for documentation and an animated GIF preview.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/coreman2200/ledpad/internal/grid"
)

// Cell is the rendered size of one LED in pixels.
const Cell = 12

const (
	labelH = 18
	margin = 8
)

var (
	colBG    = color.RGBA{5, 5, 5, 255}
	colGrid  = color.RGBA{0, 24, 0, 255}
	colPixel = color.RGBA{78, 255, 0, 255}
)

// Sheet renders every frame as a stacked contact sheet PNG with frame labels.
func Sheet(frames []grid.Grid, path string) error {
	if len(frames) == 0 {
		return errors.New("export: no frames")
	}
	fw := grid.Width*Cell + 1
	fh := grid.Height*Cell + 1
	w := fw + 2*margin
	h := margin + len(frames)*(fh+labelH+margin)

	dc := gg.NewContext(w, h)
	dc.SetColor(colBG)
	dc.Clear()

	face, err := labelFace()
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	y := margin
	for i, f := range frames {
		drawFrame(dc, f, margin, y)
		dc.SetColor(colPixel)
		dc.DrawString(fmt.Sprintf("%d/%d", i+1, len(frames)), float64(margin), float64(y+fh+labelH-4))
		y += fh + labelH + margin
	}
	if err := dc.SavePNG(path); err != nil {
		return errors.Wrap(err, "export: save sheet")
	}
	return nil
}

// GIF writes an animated preview looping forever with the given frame delay.
func GIF(frames []grid.Grid, delay time.Duration, path string) error {
	if len(frames) == 0 {
		return errors.New("export: no frames")
	}
	palette := color.Palette{colBG, colPixel}
	anim := &gif.GIF{LoopCount: 0}
	hundredths := int(delay / (10 * time.Millisecond))
	if hundredths < 1 {
		hundredths = 1
	}
	for _, f := range frames {
		img := image.NewPaletted(image.Rect(0, 0, grid.Width*Cell, grid.Height*Cell), palette)
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				if !f.Get(x, y) {
					continue
				}
				for py := y * Cell; py < (y+1)*Cell; py++ {
					for px := x * Cell; px < (x+1)*Cell; px++ {
						img.SetColorIndex(px, py, 1)
					}
				}
			}
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, hundredths)
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export: create gif")
	}
	defer out.Close()
	if err := gif.EncodeAll(out, anim); err != nil {
		return errors.Wrap(err, "export: encode gif")
	}
	return nil
}

func drawFrame(dc *gg.Context, f grid.Grid, ox, oy int) {
	fw := grid.Width*Cell + 1
	fh := grid.Height*Cell + 1

	dc.SetColor(colPixel)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if f.Get(x, y) {
				dc.DrawRectangle(float64(ox+x*Cell+1), float64(oy+y*Cell+1), Cell-1, Cell-1)
			}
		}
	}
	dc.Fill()

	dc.SetColor(colGrid)
	dc.SetLineWidth(1)
	for x := 0; x <= grid.Width; x++ {
		dc.DrawLine(float64(ox+x*Cell), float64(oy), float64(ox+x*Cell), float64(oy+fh-1))
	}
	for y := 0; y <= grid.Height; y++ {
		dc.DrawLine(float64(ox), float64(oy+y*Cell), float64(ox+fw-1), float64(oy+y*Cell))
	}
	dc.Stroke()
}

func labelFace() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "export: parse label font")
	}
	return truetype.NewFace(f, &truetype.Options{Size: 12}), nil
}
