package gfx

import "iter"

// Per-pixel renditions of the bulk operations, for surfaces whose hardware
// has no faster path than DrawIter.

// FillContiguousPixels pairs the points of area with colors and draws them
// through t.DrawIter. It stops at whichever of the two runs out first.
func FillContiguousPixels[C any](t DrawTarget[C], area Rectangle, colors iter.Seq[C]) error {
	return t.DrawIter(func(yield func(Pixel[C]) bool) {
		nextPoint, stop := iter.Pull(area.Points())
		defer stop()
		for c := range colors {
			p, ok := nextPoint()
			if !ok || !yield(Pixel[C]{Point: p, Color: c}) {
				return
			}
		}
	})
}

// FillSolidPixels draws every point of area in color through t.DrawIter.
func FillSolidPixels[C any](t DrawTarget[C], area Rectangle, color C) error {
	return t.DrawIter(func(yield func(Pixel[C]) bool) {
		for p := range area.Points() {
			if !yield(Pixel[C]{Point: p, Color: color}) {
				return
			}
		}
	})
}

// ClearPixels fills the whole bounding box of t through FillSolid.
func ClearPixels[C any](t DrawTarget[C], color C) error {
	return t.FillSolid(t.BoundingBox(), color)
}

// Repeat yields c n times; handy as a FillContiguous color stream.
func Repeat[C any](c C, n int) iter.Seq[C] {
	return func(yield func(C) bool) {
		for i := 0; i < n; i++ {
			if !yield(c) {
				return
			}
		}
	}
}
