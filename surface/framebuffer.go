// Package surface holds concrete draw targets: an in-memory framebuffer, an
// adapter over TinyGo display drivers, and the reverse adapter that lets
// TinyGo graphics libraries draw on any gfx.DrawTarget.
package surface

import (
	"image"
	"image/color"
	"iter"

	"cydkit-go/errcode"
	"cydkit-go/gfx"
)

// Framebuffer is an RGBA surface in host memory. It backs the simulator and
// tests, and doubles as an off-screen buffer for partial redraws.
type Framebuffer struct {
	img *image.RGBA
}

var _ gfx.DrawTarget[color.RGBA] = (*Framebuffer)(nil)

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (f *Framebuffer) Image() *image.RGBA { return f.img }

func (f *Framebuffer) At(x, y int) color.RGBA { return f.img.RGBAAt(x, y) }

func (f *Framebuffer) BoundingBox() gfx.Rectangle {
	b := f.img.Bounds()
	return gfx.Rect(0, 0, b.Dx(), b.Dy())
}

// DrawIter clips pixels outside the buffer.
func (f *Framebuffer) DrawIter(pixels iter.Seq[gfx.Pixel[color.RGBA]]) error {
	bb := f.BoundingBox()
	for p := range pixels {
		if bb.Contains(p.Point) {
			f.img.SetRGBA(p.Point.X, p.Point.Y, p.Color)
		}
	}
	return nil
}

// FillContiguous writes colors row by row into area. The area must lie
// inside the buffer. A stream shorter than the area leaves the rest
// untouched and reports errcode.ShortColorStream.
func (f *Framebuffer) FillContiguous(area gfx.Rectangle, colors iter.Seq[color.RGBA]) error {
	if !f.BoundingBox().ContainsRect(area) {
		return errcode.OutOfBounds
	}
	next, stop := iter.Pull(colors)
	defer stop()
	for p := range area.Points() {
		c, ok := next()
		if !ok {
			return errcode.ShortColorStream
		}
		f.img.SetRGBA(p.X, p.Y, c)
	}
	return nil
}

func (f *Framebuffer) FillSolid(area gfx.Rectangle, c color.RGBA) error {
	if !f.BoundingBox().ContainsRect(area) {
		return errcode.OutOfBounds
	}
	if area.IsEmpty() {
		return nil
	}
	// Fill the first row, then copy it down.
	br := area.BottomRight()
	first := f.img.PixOffset(area.TopLeft.X, area.TopLeft.Y)
	rowLen := area.Size.Width * 4
	row := f.img.Pix[first : first+rowLen]
	for i := 0; i < rowLen; i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
	}
	for y := area.TopLeft.Y + 1; y < br.Y; y++ {
		off := f.img.PixOffset(area.TopLeft.X, y)
		copy(f.img.Pix[off:off+rowLen], row)
	}
	return nil
}

func (f *Framebuffer) Clear(c color.RGBA) error {
	return f.FillSolid(f.BoundingBox(), c)
}
