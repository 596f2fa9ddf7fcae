package debounce

import "testing"

func feed(d *Debouncer, v bool, n int) (out bool) {
	for i := 0; i < n; i++ {
		out = d.Update(v)
	}
	return out
}

func TestNewReadsFalse(t *testing.T) {
	d := New()
	if d.Read() {
		t.Fatal("fresh debouncer should read false")
	}
	var z Debouncer
	if z.Read() || z.Window() != 0 {
		t.Fatal("zero value should be empty and false")
	}
}

func TestSixteenTruesFlip(t *testing.T) {
	d := New()
	if feed(d, true, Samples-1) {
		t.Fatal("Update returned true before the window was unanimous")
	}
	if d.Read() {
		t.Fatal("15 true samples must not flip the output")
	}
	if !d.Update(true) {
		t.Fatal("16th true sample should flip the output")
	}
	if !d.Read() {
		t.Fatal("Read disagrees with Update")
	}
}

func TestSingleOppositeSampleDoesNotFlip(t *testing.T) {
	d := New()
	feed(d, true, Samples)
	if !d.Update(false) || !d.Read() {
		t.Fatal("one false sample flipped a settled true output")
	}

	d.Empty()
	feed(d, false, 40)
	if d.Update(true) || d.Read() {
		t.Fatal("one true sample flipped a settled false output")
	}
}

func TestSettlesForAnyLongRun(t *testing.T) {
	for _, v := range []bool{true, false} {
		for n := Samples; n < 3*Samples; n++ {
			d := New()
			feed(d, !v, Samples) // settle on the opposite value first
			feed(d, v, n)
			if d.Read() != v {
				t.Fatalf("after %d samples of %v Read() = %v", n, v, d.Read())
			}
		}
	}
}

func TestAlternatingNeverFlips(t *testing.T) {
	d := New()
	feed(d, true, Samples)
	v := false
	for i := 0; i < 1000; i++ {
		if !d.Update(v) {
			t.Fatalf("alternating input flipped the output at sample %d", i)
		}
		v = !v
	}
}

func TestOutputChangesOnlyWhenWindowBecomesUniform(t *testing.T) {
	// Deterministic pseudo-random bursts of noise and runs.
	var seed uint32 = 12345
	next := func() uint32 {
		seed = seed*1664525 + 1013904223
		return seed >> 16
	}

	d := New()
	prev := d.Read()
	for i := 0; i < 20000; i++ {
		var s bool
		if next()%8 == 0 {
			// long run
			s = next()%2 == 0
			for j := 0; j < int(next()%40); j++ {
				out := d.Update(s)
				checkTransition(t, d, prev, out)
				prev = out
			}
			continue
		}
		s = next()%2 == 0
		out := d.Update(s)
		checkTransition(t, d, prev, out)
		prev = out
	}
}

func checkTransition(t *testing.T, d *Debouncer, prev, out bool) {
	t.Helper()
	if out == prev {
		return
	}
	want := uint16(0)
	if out {
		want = full
	}
	if d.Window() != want {
		t.Fatalf("output changed to %v with window %016b", out, d.Window())
	}
}

func TestFillAndEmpty(t *testing.T) {
	d := New()
	d.Fill()
	if !d.Read() || d.Window() != full {
		t.Fatal("Fill should seed a pressed state")
	}
	d.Empty()
	if d.Read() || d.Window() != 0 {
		t.Fatal("Empty should seed a released state")
	}
}

func TestFillThenNoiseHolds(t *testing.T) {
	d := New()
	d.Fill()
	// A fully-filled window followed by 15 falses still has one true bit.
	if !feed(d, false, Samples-1) {
		t.Fatal("output dropped before the window emptied")
	}
	if feed(d, false, 1) {
		t.Fatal("output should drop on the 16th false sample")
	}
}
