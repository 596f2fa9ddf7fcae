package profiler

import (
	"errors"
	"iter"
	"slices"
	"testing"
	"time"

	"cydkit-go/gfx"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// slowSurface advances the clock by a fixed cost per call and can fail.
type slowSurface struct {
	clk   *fakeClock
	cost  map[string]time.Duration
	err   map[string]error
	calls []string
	pix   int
}

func newSlow(clk *fakeClock) *slowSurface {
	return &slowSurface{clk: clk, cost: map[string]time.Duration{}, err: map[string]error{}}
}

func (s *slowSurface) op(name string) error {
	s.calls = append(s.calls, name)
	s.clk.Advance(s.cost[name])
	return s.err[name]
}

func (s *slowSurface) BoundingBox() gfx.Rectangle { return gfx.Rect(0, 0, 320, 240) }
func (s *slowSurface) DrawIter(pixels iter.Seq[gfx.Pixel[uint16]]) error {
	for range pixels {
		s.pix++
	}
	return s.op("draw_iter")
}
func (s *slowSurface) FillContiguous(area gfx.Rectangle, colors iter.Seq[uint16]) error {
	for range colors {
		s.pix++
	}
	return s.op("fill_contiguous")
}
func (s *slowSurface) FillSolid(area gfx.Rectangle, c uint16) error {
	s.pix += area.Area()
	return s.op("fill_solid")
}
func (s *slowSurface) Clear(c uint16) error { return s.op("clear") }

func setup() (*fakeClock, *slowSurface, *Display[uint16]) {
	clk := &fakeClock{now: time.Unix(1000, 0)}
	s := newSlow(clk)
	return clk, s, New[uint16](s, WithClock(clk))
}

func pixels(n int) iter.Seq[gfx.Pixel[uint16]] {
	return func(yield func(gfx.Pixel[uint16]) bool) {
		for i := 0; i < n; i++ {
			if !yield(gfx.Pixel[uint16]{Point: gfx.Point{X: i}, Color: 0xF800}) {
				return
			}
		}
	}
}

func TestFillSolidAttribution(t *testing.T) {
	_, s, d := setup()
	s.cost["fill_solid"] = 5 * time.Millisecond

	if err := d.FillSolid(gfx.Rect(0, 0, 10, 10), 0x07E0); err != nil {
		t.Fatal(err)
	}
	if d.TimeFillSolid() < 5*time.Millisecond {
		t.Fatalf("TimeFillSolid = %v, want >= 5ms", d.TimeFillSolid())
	}
	if d.TimeDrawIter() != 0 || d.TimeFillContiguous() != 0 || d.TimeDraw() != 0 {
		t.Fatal("other counters should stay zero")
	}
}

func TestClearCountsAsFillSolid(t *testing.T) {
	_, s, d := setup()
	s.cost["clear"] = 3 * time.Millisecond

	if err := d.Clear(0); err != nil {
		t.Fatal(err)
	}
	if d.TimeFillSolid() != 3*time.Millisecond {
		t.Fatalf("clear time booked as %v fill_solid", d.TimeFillSolid())
	}
	if d.Time() != 3*time.Millisecond {
		t.Fatalf("Time = %v", d.Time())
	}
}

func TestEachCategory(t *testing.T) {
	_, s, d := setup()
	s.cost["draw_iter"] = 7 * time.Millisecond
	s.cost["fill_contiguous"] = 2 * time.Millisecond
	s.cost["fill_solid"] = time.Millisecond

	_ = d.DrawIter(pixels(4))
	_ = d.FillContiguous(gfx.Rect(0, 0, 2, 2), gfx.Repeat[uint16](1, 4))
	_ = d.FillSolid(gfx.Rect(0, 0, 2, 2), 1)
	_ = d.DrawIter(pixels(1))

	got := d.Snapshot()
	want := Timings{DrawIter: 14 * time.Millisecond, FillContiguous: 2 * time.Millisecond, FillSolid: time.Millisecond}
	if got != want {
		t.Fatalf("Snapshot = %+v, want %+v", got, want)
	}
	if d.Time() != got.Total() || d.Time() != 17*time.Millisecond {
		t.Fatalf("Time = %v, Total = %v", d.Time(), got.Total())
	}
	if !slices.Equal(s.calls, []string{"draw_iter", "fill_contiguous", "fill_solid", "draw_iter"}) {
		t.Fatalf("forwarded calls = %v", s.calls)
	}
	if s.pix != 13 {
		t.Fatalf("surface drew %d pixels, want 13", s.pix)
	}
}

func TestSumInvariantOverRandomCalls(t *testing.T) {
	clk, s, d := setup()
	var seed uint32 = 7
	next := func() uint32 {
		seed = seed*1103515245 + 12345
		return (seed >> 8) & 0xFFFF
	}
	for i := 0; i < 500; i++ {
		s.cost["draw_iter"] = time.Duration(next()) * time.Microsecond
		s.cost["fill_contiguous"] = time.Duration(next()) * time.Microsecond
		s.cost["fill_solid"] = time.Duration(next()) * time.Microsecond
		s.cost["clear"] = time.Duration(next()) * time.Microsecond
		before := d.Snapshot()
		switch next() % 4 {
		case 0:
			_ = d.DrawIter(pixels(2))
		case 1:
			_ = d.FillContiguous(gfx.Rect(0, 0, 1, 1), gfx.Repeat[uint16](0, 1))
		case 2:
			_ = d.FillSolid(gfx.Rect(0, 0, 1, 1), 0)
		case 3:
			_ = d.Clear(0)
		}
		after := d.Snapshot()
		if after.DrawIter < before.DrawIter || after.FillContiguous < before.FillContiguous ||
			after.FillSolid < before.FillSolid || after.Draw != 0 {
			t.Fatalf("counter went backwards: %+v -> %+v", before, after)
		}
		if d.Time() != d.TimeDraw()+d.TimeDrawIter()+d.TimeFillContiguous()+d.TimeFillSolid() {
			t.Fatal("Time is not the sum of the categories")
		}
		if next()%50 == 0 {
			d.ResetTime()
		}
		clk.Advance(time.Millisecond) // time between calls is not booked
	}
}

func TestResetZeroesEverything(t *testing.T) {
	_, s, d := setup()
	s.cost["draw_iter"] = time.Millisecond
	s.cost["fill_solid"] = time.Millisecond
	s.cost["fill_contiguous"] = time.Millisecond
	_ = d.DrawIter(pixels(1))
	_ = d.FillSolid(gfx.Rect(0, 0, 1, 1), 0)
	_ = d.FillContiguous(gfx.Rect(0, 0, 1, 1), gfx.Repeat[uint16](0, 1))

	d.ResetTime()
	if d.Time() != 0 || d.TimeDraw() != 0 || d.TimeDrawIter() != 0 ||
		d.TimeFillContiguous() != 0 || d.TimeFillSolid() != 0 {
		t.Fatalf("counters not zero after reset: %+v", d.Snapshot())
	}
}

func TestErrorsPassThroughAndAreTimed(t *testing.T) {
	_, s, d := setup()
	busErr := errors.New("spi: transfer failed")
	regionErr := errors.New("invalid region")
	s.err["draw_iter"] = busErr
	s.err["fill_contiguous"] = regionErr
	s.err["fill_solid"] = busErr
	s.err["clear"] = regionErr
	for k := range s.err {
		s.cost[k] = time.Millisecond
	}

	if err := d.DrawIter(pixels(1)); err != busErr {
		t.Fatalf("DrawIter err = %v", err)
	}
	if err := d.FillContiguous(gfx.Rect(0, 0, 1, 1), gfx.Repeat[uint16](0, 1)); err != regionErr {
		t.Fatalf("FillContiguous err = %v", err)
	}
	if err := d.FillSolid(gfx.Rect(0, 0, 1, 1), 0); err != busErr {
		t.Fatalf("FillSolid err = %v", err)
	}
	if err := d.Clear(0); err != regionErr {
		t.Fatalf("Clear err = %v", err)
	}

	want := Timings{DrawIter: time.Millisecond, FillContiguous: time.Millisecond, FillSolid: 2 * time.Millisecond}
	if d.Snapshot() != want {
		t.Fatalf("failing calls were not timed: %+v", d.Snapshot())
	}
}

func TestBoundingBoxPassesThroughUntimed(t *testing.T) {
	_, s, d := setup()
	if d.BoundingBox() != s.BoundingBox() {
		t.Fatal("BoundingBox not forwarded")
	}
	if d.Time() != 0 || len(s.calls) != 0 {
		t.Fatal("BoundingBox should not be timed or counted")
	}
	if d.Target() != gfx.DrawTarget[uint16](s) {
		t.Fatal("Target should return the wrapped surface")
	}
}

func TestDefaultClockMeasuresRealTime(t *testing.T) {
	s := &sleepy{}
	d := New[uint16](s)
	if err := d.FillSolid(gfx.Rect(0, 0, 1, 1), 0); err != nil {
		t.Fatal(err)
	}
	if d.TimeFillSolid() < 2*time.Millisecond {
		t.Fatalf("TimeFillSolid = %v, want >= 2ms", d.TimeFillSolid())
	}
}

type sleepy struct{}

func (sleepy) BoundingBox() gfx.Rectangle                           { return gfx.Rect(0, 0, 1, 1) }
func (sleepy) DrawIter(iter.Seq[gfx.Pixel[uint16]]) error           { return nil }
func (sleepy) FillContiguous(gfx.Rectangle, iter.Seq[uint16]) error { return nil }
func (sleepy) FillSolid(gfx.Rectangle, uint16) error                { time.Sleep(2 * time.Millisecond); return nil }
func (sleepy) Clear(uint16) error                                   { return nil }
