// Package imgimport converts raster images into boolean buffers for the
// placement tool. A pixel is lit when it is both opaque enough and light
// enough; everything else is unlit.
package imgimport

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/coreman2200/ledpad/internal/grid"
)

// Thresholds on the 0..255 scale: pixels below alphaMin are treated as
// background, pixels at or above lightMin as lit.
const (
	alphaMin = 128
	lightMin = 128
)

// Open decodes the image at path and converts it. When fit is true the image
// is first scaled down to the grid dimensions, preserving aspect ratio;
// images already within bounds are untouched.
func Open(path string, fit bool) (grid.Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return grid.Buffer{}, errors.Wrap(err, "imgimport: open")
	}
	return Convert(img, fit)
}

// Convert maps an image onto a boolean buffer.
func Convert(img image.Image, fit bool) (grid.Buffer, error) {
	b := img.Bounds()
	if fit && (b.Dx() > grid.Width || b.Dy() > grid.Height) {
		img = imaging.Fit(img, grid.Width, grid.Height, imaging.NearestNeighbor)
		b = img.Bounds()
	}
	if b.Dx() == 0 || b.Dy() == 0 {
		return grid.Buffer{}, grid.ErrEmptyBuffer
	}
	rows := make([][]bool, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		rows[y] = make([]bool, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			// Threshold on the straight-alpha color; premultiplied channels
			// would darken partially transparent pixels before the test.
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if int(c.A) < alphaMin {
				continue
			}
			if lightness(c.R, c.G, c.B) >= lightMin {
				rows[y][x] = true
			}
		}
	}
	return grid.NewBuffer(rows)
}

// lightness is the HSL lightness: the mean of the channel extremes.
func lightness(r, g, b uint8) int {
	hi, lo := r, r
	for _, c := range [2]uint8{g, b} {
		if c > hi {
			hi = c
		}
		if c < lo {
			lo = c
		}
	}
	return (int(hi) + int(lo)) / 2
}
