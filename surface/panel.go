package surface

import (
	"image/color"
	"iter"

	"cydkit-go/errcode"
	"cydkit-go/gfx"

	"tinygo.org/x/drivers"
)

// rectFiller is the bulk-fill fast path most SPI TFT drivers (ili9341,
// st7789, ili9488) expose next to drivers.Displayer.
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Panel adapts a TinyGo display driver to gfx.DrawTarget.
type Panel struct {
	dev  drivers.Displayer
	fill rectFiller // nil when the driver only has SetPixel
}

var _ gfx.DrawTarget[color.RGBA] = (*Panel)(nil)

func NewPanel(dev drivers.Displayer) *Panel {
	p := &Panel{dev: dev}
	if f, ok := dev.(rectFiller); ok {
		p.fill = f
	}
	return p
}

// Device returns the wrapped driver.
func (p *Panel) Device() drivers.Displayer { return p.dev }

func (p *Panel) BoundingBox() gfx.Rectangle {
	w, h := p.dev.Size()
	return gfx.Rect(0, 0, int(w), int(h))
}

func (p *Panel) DrawIter(pixels iter.Seq[gfx.Pixel[color.RGBA]]) error {
	bb := p.BoundingBox()
	for px := range pixels {
		if bb.Contains(px.Point) {
			p.dev.SetPixel(int16(px.Point.X), int16(px.Point.Y), px.Color)
		}
	}
	return nil
}

func (p *Panel) FillContiguous(area gfx.Rectangle, colors iter.Seq[color.RGBA]) error {
	if !p.BoundingBox().ContainsRect(area) {
		return errcode.OutOfBounds
	}
	next, stop := iter.Pull(colors)
	defer stop()
	for pt := range area.Points() {
		c, ok := next()
		if !ok {
			return errcode.ShortColorStream
		}
		p.dev.SetPixel(int16(pt.X), int16(pt.Y), c)
	}
	return nil
}

func (p *Panel) FillSolid(area gfx.Rectangle, c color.RGBA) error {
	if !p.BoundingBox().ContainsRect(area) {
		return errcode.OutOfBounds
	}
	if area.IsEmpty() {
		return nil
	}
	if p.fill != nil {
		return p.fill.FillRectangle(int16(area.TopLeft.X), int16(area.TopLeft.Y),
			int16(area.Size.Width), int16(area.Size.Height), c)
	}
	return gfx.FillSolidPixels[color.RGBA](p, area, c)
}

func (p *Panel) Clear(c color.RGBA) error { return p.FillSolid(p.BoundingBox(), c) }

// Flush pushes a buffered driver's frame to the glass. Unbuffered drivers
// return nil.
func (p *Panel) Flush() error { return p.dev.Display() }
