// Package debounce turns a bouncy boolean signal, such as a touch panel's
// pressure-detect line, into a stable reading.
package debounce

// Samples is the number of consecutive identical samples needed to flip the
// output.
const Samples = 16

const full = ^uint16(0)

// Debouncer is a unanimity filter over the last Samples samples: the output
// becomes true only when all of them are true and false only when all of
// them are false. Any mixed window holds the previous output.
//
// The zero value is ready to use (empty window, output false). A Debouncer
// is owned by one polling goroutine; it has no internal locking.
type Debouncer struct {
	window uint16
	out    bool
}

func New() *Debouncer { return &Debouncer{} }

// Update shifts sample into the window, dropping the oldest one, and returns
// the (possibly unchanged) output.
func (d *Debouncer) Update(sample bool) bool {
	d.window <<= 1
	if sample {
		d.window |= 1
	}
	switch d.window {
	case full:
		d.out = true
	case 0:
		d.out = false
	}
	return d.out
}

// Read returns the current output without touching the window.
func (d *Debouncer) Read() bool { return d.out }

// Fill seeds a known-pressed state.
func (d *Debouncer) Fill() {
	d.window = full
	d.out = true
}

// Empty seeds a known-released state.
func (d *Debouncer) Empty() {
	d.window = 0
	d.out = false
}

// Window returns the raw sample history, newest sample in bit 0.
func (d *Debouncer) Window() uint16 { return d.window }
