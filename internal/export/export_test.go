package export

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coreman2200/ledpad/internal/grid"
)

func TestSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")

	a := grid.New()
	a.Set(0, 0, true)
	b := grid.New()
	b.Invert()

	if err := Sheet([]grid.Grid{a, b}, path); err != nil {
		t.Fatalf("Sheet: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantW := grid.Width*Cell + 1 + 2*margin
	if img.Bounds().Dx() != wantW {
		t.Fatalf("sheet width = %d, want %d", img.Bounds().Dx(), wantW)
	}

	if err := Sheet(nil, path); err == nil {
		t.Fatal("empty sequence must fail")
	}
}

func TestGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anim.gif")

	a := grid.New()
	a.Set(5, 5, true)
	b := grid.New()

	if err := GIF([]grid.Grid{a, b}, 250*time.Millisecond, path); err != nil {
		t.Fatalf("GIF: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 2 {
		t.Fatalf("gif frames = %d", len(g.Image))
	}
	if g.Delay[0] != 25 {
		t.Fatalf("delay = %d hundredths, want 25", g.Delay[0])
	}
	if g.Image[0].Bounds().Dx() != grid.Width*Cell {
		t.Fatalf("frame width = %d", g.Image[0].Bounds().Dx())
	}

	// Sub-10ms delays floor at one hundredth.
	if err := GIF([]grid.Grid{a}, time.Millisecond, path); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	f2, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f2.Close()
	g, err = gif.DecodeAll(f2)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if g.Delay[0] != 1 {
		t.Fatalf("floored delay = %d", g.Delay[0])
	}

	if err := GIF(nil, time.Second, path); err == nil {
		t.Fatal("empty sequence must fail")
	}
}
