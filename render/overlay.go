package render

import (
	"image/color"

	"cydkit-go/gfx"
	"cydkit-go/surface"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Overlay prints one status line in a band at the top of the screen.
type Overlay struct {
	Font   *tinyfont.Font
	FG, BG color.RGBA
	Height int // band height in pixels
}

func NewOverlay() *Overlay {
	return &Overlay{
		Font:   &proggy.TinySZ8pt7b,
		FG:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		BG:     color.RGBA{A: 0xFF},
		Height: 10,
	}
}

// Draw clears the band and writes text into it through t, so a profiled t
// accounts for the overlay's own cost.
func (o *Overlay) Draw(t gfx.DrawTarget[color.RGBA], text string) error {
	bb := t.BoundingBox()
	band := gfx.Rect(bb.TopLeft.X, bb.TopLeft.Y, bb.Size.Width, min(o.Height, bb.Size.Height))
	if err := t.FillSolid(band, o.BG); err != nil {
		return err
	}
	d := surface.NewDisplayer(t)
	tinyfont.WriteLine(d, o.Font, int16(band.TopLeft.X+1), int16(band.TopLeft.Y+band.Size.Height-2), text, o.FG)
	return d.Display()
}
