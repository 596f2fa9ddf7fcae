package surface

import (
	"image/color"

	"cydkit-go/gfx"

	"tinygo.org/x/drivers"
)

// Displayer presents a gfx.DrawTarget as a drivers.Displayer so that TinyGo
// libraries such as tinyfont can draw through it. Wrapping a profiler keeps
// their cost on the books: SetPixel lands in DrawIter time and FillRectangle
// in FillSolid time.
//
// SetPixel cannot return an error; the first one is kept and reported by
// Err and Display.
type Displayer struct {
	t   gfx.DrawTarget[color.RGBA]
	err error
}

var _ drivers.Displayer = (*Displayer)(nil)

func NewDisplayer(t gfx.DrawTarget[color.RGBA]) *Displayer {
	return &Displayer{t: t}
}

func (d *Displayer) Size() (x, y int16) {
	s := d.t.BoundingBox().Size
	return int16(s.Width), int16(s.Height)
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	px := gfx.Pixel[color.RGBA]{Point: gfx.Point{X: int(x), Y: int(y)}, Color: c}
	err := d.t.DrawIter(func(yield func(gfx.Pixel[color.RGBA]) bool) { yield(px) })
	if err != nil && d.err == nil {
		d.err = err
	}
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.t.FillSolid(gfx.Rect(int(x), int(y), int(width), int(height)), c)
}

// Display reports and clears the first SetPixel error since the last call.
func (d *Displayer) Display() error {
	err := d.err
	d.err = nil
	return err
}

func (d *Displayer) Err() error { return d.err }
