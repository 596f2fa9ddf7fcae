package main

import (
	"image/color"
	"iter"

	"cydkit-go/gfx"
	"cydkit-go/touchinput"
)

var (
	colBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
	colButton = color.RGBA{R: 0x30, G: 0x60, B: 0xC0, A: 0xFF}
	colActive = color.RGBA{R: 0xF0, G: 0xA0, B: 0x20, A: 0xFF}
	colCursor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// demo is a small scene touching every draw category: a button
// (FillSolid), a scrolling gradient bar (FillContiguous) and a drag
// cursor (DrawIter).
type demo struct {
	started bool
	pressed bool
	frame   int
	button  gfx.Rectangle
	bar     gfx.Rectangle
}

func newDemo() *demo {
	return &demo{
		button: gfx.Rect(20, 40, 80, 40),
		bar:    gfx.Rect(20, 200, 200, 6),
	}
}

func (d *demo) Draw(t gfx.DrawTarget[color.RGBA], in touchinput.Interaction) error {
	if !d.started {
		if err := t.Clear(colBG); err != nil {
			return err
		}
		d.started = true
	}
	d.frame++

	switch in.Kind {
	case touchinput.Click:
		d.pressed = true
	case touchinput.Release:
		d.pressed = false
	}
	btn := colButton
	if d.pressed {
		btn = colActive
	}
	if err := t.FillSolid(d.button, btn); err != nil {
		return err
	}
	if err := t.FillContiguous(d.bar, d.gradient()); err != nil {
		return err
	}
	if in.Kind == touchinput.Drag {
		return t.DrawIter(cursor(in.Point, t.BoundingBox()))
	}
	return nil
}

func (d *demo) gradient() iter.Seq[color.RGBA] {
	w, n := d.bar.Size.Width, d.bar.Area()
	return func(yield func(color.RGBA) bool) {
		for i := range n {
			v := uint8((i%w + d.frame*4) % 256)
			if !yield(color.RGBA{R: v, G: 0x40, B: 0xFF - v, A: 0xFF}) {
				return
			}
		}
	}
}

func cursor(at gfx.Point, bounds gfx.Rectangle) iter.Seq[gfx.Pixel[color.RGBA]] {
	return func(yield func(gfx.Pixel[color.RGBA]) bool) {
		for p := range gfx.Rect(at.X-1, at.Y-1, 3, 3).Intersect(bounds).Points() {
			if !yield(gfx.Pixel[color.RGBA]{Point: p, Color: colCursor}) {
				return
			}
		}
	}
}
