// Package render drives a UI frame loop over a profiled display and turns
// the profiler's counters into per-frame timing reports.
package render

import (
	"time"

	"cydkit-go/profiler"
	"cydkit-go/x/mathx"
	"cydkit-go/x/timex"
)

// Source is the part of profiler.Display a FrameTimer needs.
type Source interface {
	Snapshot() profiler.Timings
	ResetTime()
}

// FrameStats is the timing report of one frame.
//
//	Prep  - frame start until drawing starts (input handling, state updates)
//	Draw  - time spent inside draw calls, as booked by the profiler
//	Proc  - rest of the drawing phase (layout, widget logic, flush)
//	Total - Prep + Draw + Proc
type FrameStats struct {
	Frame     uint64
	Prep      time.Duration
	Draw      time.Duration
	Proc      time.Duration
	Total     time.Duration
	Breakdown profiler.Timings
}

func (s FrameStats) String() string {
	return "draw time: " + timex.FormatMillis(s.Draw) +
		" | prep time: " + timex.FormatMillis(s.Prep) +
		" | proc time: " + timex.FormatMillis(s.Proc) +
		" | total time: " + timex.FormatMillis(s.Total)
}

// FrameTimer brackets one frame at a time: Begin, BeginDraw, End.
type FrameTimer struct {
	src   Source
	clock profiler.Clock

	start     time.Time
	drawStart time.Time
	frame     uint64
}

func NewFrameTimer(src Source, clock profiler.Clock) *FrameTimer {
	if clock == nil {
		clock = sysClock{}
	}
	return &FrameTimer{src: src, clock: clock}
}

func (f *FrameTimer) Begin() {
	f.start = f.clock.Now()
	f.drawStart = f.start
}

func (f *FrameTimer) BeginDraw() { f.drawStart = f.clock.Now() }

// End closes the frame and resets the profiler's counters for the next one.
func (f *FrameTimer) End() FrameStats {
	end := f.clock.Now()
	b := f.src.Snapshot()
	f.src.ResetTime()
	f.frame++

	draw := b.Total()
	prep := f.drawStart.Sub(f.start)
	proc := end.Sub(f.drawStart)
	proc -= mathx.Min(draw, proc)
	return FrameStats{
		Frame:     f.frame,
		Prep:      prep,
		Draw:      draw,
		Proc:      proc,
		Total:     draw + prep + proc,
		Breakdown: b,
	}
}

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now() }
