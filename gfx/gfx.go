// Package gfx defines the draw-target capability set shared by surfaces,
// the profiler and the render loop: geometry, pixels and the fallible
// drawing operations a panel driver implements.
package gfx

import "iter"

type Point struct{ X, Y int }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

type Size struct{ Width, Height int }

// Rectangle is a half-open box: TopLeft is inside, TopLeft+Size is not.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

func Rect(x, y, w, h int) Rectangle {
	return Rectangle{TopLeft: Point{x, y}, Size: Size{w, h}}
}

func (r Rectangle) IsEmpty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

func (r Rectangle) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Size.Width * r.Size.Height
}

// BottomRight is the first point outside the rectangle on both axes.
func (r Rectangle) BottomRight() Point {
	return Point{r.TopLeft.X + r.Size.Width, r.TopLeft.Y + r.Size.Height}
}

func (r Rectangle) Contains(p Point) bool {
	br := r.BottomRight()
	return p.X >= r.TopLeft.X && p.Y >= r.TopLeft.Y && p.X < br.X && p.Y < br.Y
}

// ContainsRect reports whether o lies fully inside r. Empty rectangles are
// contained everywhere.
func (r Rectangle) ContainsRect(o Rectangle) bool {
	if o.IsEmpty() {
		return true
	}
	br, obr := r.BottomRight(), o.BottomRight()
	return o.TopLeft.X >= r.TopLeft.X && o.TopLeft.Y >= r.TopLeft.Y &&
		obr.X <= br.X && obr.Y <= br.Y
}

// Intersect returns the overlap of r and o; the result is empty when they
// do not overlap.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	br, obr := r.BottomRight(), o.BottomRight()
	x0, y0 := max(r.TopLeft.X, o.TopLeft.X), max(r.TopLeft.Y, o.TopLeft.Y)
	x1, y1 := min(br.X, obr.X), min(br.Y, obr.Y)
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{TopLeft: Point{x0, y0}}
	}
	return Rect(x0, y0, x1-x0, y1-y0)
}

// Points yields every point of r in row-major order.
func (r Rectangle) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if r.IsEmpty() {
			return
		}
		br := r.BottomRight()
		for y := r.TopLeft.Y; y < br.Y; y++ {
			for x := r.TopLeft.X; x < br.X; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

type Pixel[C any] struct {
	Point Point
	Color C
}

// Dimensions is the geometry query of a surface.
type Dimensions interface {
	BoundingBox() Rectangle
}

// DrawTarget is anything that can be drawn on. Every operation is fallible
// with an error chosen by the implementation (bus transfer failure, invalid
// region, ...).
type DrawTarget[C any] interface {
	Dimensions
	// DrawIter draws individually addressed pixels. Pixels outside the
	// bounding box are ignored.
	DrawIter(pixels iter.Seq[Pixel[C]]) error
	// FillContiguous fills area row by row from a color stream.
	FillContiguous(area Rectangle, colors iter.Seq[C]) error
	// FillSolid fills area with one color.
	FillSolid(area Rectangle, color C) error
	// Clear fills the whole surface with one color.
	Clear(color C) error
}
