// Package profiler measures where a frame's drawing time goes.
//
// Display wraps a gfx.DrawTarget and books the wall time of every forwarded
// call into one of four counters. Single-pixel iteration on an SPI panel is
// usually far slower than a bulk fill, and the split shows which path a UI
// is actually taking. The render loop reads the counters once per frame
// and calls ResetTime.
package profiler

import (
	"iter"
	"time"

	"cydkit-go/gfx"
)

// Clock is the monotonic time source used to bracket draw calls.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

// time.Now carries a monotonic reading; Sub between two of them is monotonic.
func (wallClock) Now() time.Time { return time.Now() }

type options struct {
	clock Clock
}

type Option func(*options)

// WithClock replaces the default clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// Timings is a copy of the four counters.
type Timings struct {
	Draw           time.Duration
	DrawIter       time.Duration
	FillContiguous time.Duration
	FillSolid      time.Duration
}

func (t Timings) Total() time.Duration {
	return t.Draw + t.DrawIter + t.FillContiguous + t.FillSolid
}

// Display is a gfx.DrawTarget that forwards to the wrapped target and
// accumulates per-category durations. Errors from the target are returned
// as-is and the call is still timed.
//
// Display is not safe for concurrent use; share it behind a mutex if needed.
type Display[C any] struct {
	target gfx.DrawTarget[C]
	clock  Clock
	t      Timings
}

var _ gfx.DrawTarget[struct{}] = (*Display[struct{}])(nil)

// New takes ownership of target. Draw on target only through the returned
// Display from here on, or the untimed calls go missing from the report.
func New[C any](target gfx.DrawTarget[C], opts ...Option) *Display[C] {
	o := options{clock: wallClock{}}
	for _, fn := range opts {
		fn(&o)
	}
	return &Display[C]{target: target, clock: o.clock}
}

// Target returns the wrapped surface, e.g. to flush a buffered panel.
func (d *Display[C]) Target() gfx.DrawTarget[C] { return d.target }

func (d *Display[C]) BoundingBox() gfx.Rectangle { return d.target.BoundingBox() }

func (d *Display[C]) DrawIter(pixels iter.Seq[gfx.Pixel[C]]) error {
	start := d.clock.Now()
	err := d.target.DrawIter(pixels)
	d.t.DrawIter += d.clock.Now().Sub(start)
	return err
}

func (d *Display[C]) FillContiguous(area gfx.Rectangle, colors iter.Seq[C]) error {
	start := d.clock.Now()
	err := d.target.FillContiguous(area, colors)
	d.t.FillContiguous += d.clock.Now().Sub(start)
	return err
}

func (d *Display[C]) FillSolid(area gfx.Rectangle, color C) error {
	start := d.clock.Now()
	err := d.target.FillSolid(area, color)
	d.t.FillSolid += d.clock.Now().Sub(start)
	return err
}

// Clear is booked as a solid fill.
func (d *Display[C]) Clear(color C) error {
	start := d.clock.Now()
	err := d.target.Clear(color)
	d.t.FillSolid += d.clock.Now().Sub(start)
	return err
}

// TimeDraw is reserved for whole-drawable timing. No forwarded call feeds
// it, so it stays zero; it is still part of Time.
func (d *Display[C]) TimeDraw() time.Duration { return d.t.Draw }

func (d *Display[C]) TimeDrawIter() time.Duration { return d.t.DrawIter }

func (d *Display[C]) TimeFillContiguous() time.Duration { return d.t.FillContiguous }

func (d *Display[C]) TimeFillSolid() time.Duration { return d.t.FillSolid }

// Time is the sum of all counters since the last reset.
func (d *Display[C]) Time() time.Duration { return d.t.Total() }

func (d *Display[C]) Snapshot() Timings { return d.t }

// ResetTime zeroes all counters.
func (d *Display[C]) ResetTime() { d.t = Timings{} }
