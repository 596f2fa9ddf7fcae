package render

import "time"

// Window keeps the last N frame reports for a smoothed readout.
type Window struct {
	buf  []FrameStats
	next int
	full bool
}

func NewWindow(n int) *Window {
	if n <= 0 {
		n = 60
	}
	return &Window{buf: make([]FrameStats, n)}
}

func (w *Window) Add(s FrameStats) {
	w.buf[w.next] = s
	w.next++
	if w.next == len(w.buf) {
		w.next = 0
		w.full = true
	}
}

func (w *Window) Len() int {
	if w.full {
		return len(w.buf)
	}
	return w.next
}

// Avg averages every duration field; Frame is the newest frame number.
func (w *Window) Avg() FrameStats {
	n := w.Len()
	if n == 0 {
		return FrameStats{}
	}
	var a FrameStats
	for _, s := range w.buf[:n] {
		a.Prep += s.Prep
		a.Draw += s.Draw
		a.Proc += s.Proc
		a.Total += s.Total
		a.Breakdown.Draw += s.Breakdown.Draw
		a.Breakdown.DrawIter += s.Breakdown.DrawIter
		a.Breakdown.FillContiguous += s.Breakdown.FillContiguous
		a.Breakdown.FillSolid += s.Breakdown.FillSolid
		a.Frame = max(a.Frame, s.Frame)
	}
	d := time.Duration(n)
	a.Prep /= d
	a.Draw /= d
	a.Proc /= d
	a.Total /= d
	a.Breakdown.Draw /= d
	a.Breakdown.DrawIter /= d
	a.Breakdown.FillContiguous /= d
	a.Breakdown.FillSolid /= d
	return a
}
