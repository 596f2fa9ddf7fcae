// Package touchinput is the input-polling side of a resistive touchscreen:
// it samples a touch controller, debounces the pressed state and turns it
// into click/drag/release interactions for the UI.
package touchinput

import (
	"time"

	"cydkit-go/debounce"
	"cydkit-go/gfx"

	"tinygo.org/x/drivers/touch"
)

type Kind uint8

const (
	None Kind = iota
	Click
	Drag
	Release
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Click:
		return "click"
	case Drag:
		return "drag"
	case Release:
		return "release"
	default:
		return "INVALID"
	}
}

type Interaction struct {
	Kind  Kind
	Point gfx.Point
}

type Config struct {
	// Readings with Z (pressure) at or above this count as pressed.
	PressureThreshold int
	PollInterval      time.Duration
	Calibration       Calibration
	// SeedPressed starts the debouncer in the pressed state.
	SeedPressed bool
}

func (c *Config) applyDefaults() {
	if c.PressureThreshold <= 0 {
		c.PressureThreshold = 400
	}
	if c.PollInterval <= 0 {
		c.PollInterval = time.Millisecond
	}
	if c.Calibration.Width <= 0 || c.Calibration.Height <= 0 {
		c.Calibration = DefaultCalibration()
	}
}

// Poller owns one touch controller and its debouncer. Call Sample from a
// single goroutine at a steady rate.
type Poller struct {
	dev touch.Pointer
	cfg Config
	deb *debounce.Debouncer

	pressed bool      // debounced state at the previous sample
	last    gfx.Point // last position read while really pressed
}

func NewPoller(dev touch.Pointer, cfg Config) *Poller {
	cfg.applyDefaults()
	p := &Poller{dev: dev, cfg: cfg, deb: debounce.New()}
	if cfg.SeedPressed {
		p.deb.Fill()
		p.pressed = true
	}
	return p
}

func (p *Poller) Config() Config { return p.cfg }

// Pressed is the debounced state.
func (p *Poller) Pressed() bool { return p.deb.Read() }

// Last is the most recent screen position seen under a firm press.
func (p *Poller) Last() gfx.Point { return p.last }

// Sample reads the controller once and reports what changed.
//
// Position is only taken from readings that are themselves above the
// pressure threshold; a light reading inside a debounced press keeps the
// previous point, since XY on a lifting finger is garbage.
func (p *Poller) Sample() Interaction {
	raw := p.dev.ReadTouchPoint()
	firm := raw.Z >= p.cfg.PressureThreshold
	if firm {
		p.last = p.cfg.Calibration.Map(raw)
	}

	was := p.pressed
	now := p.deb.Update(firm)
	p.pressed = now

	switch {
	case now && was:
		return Interaction{Kind: Drag, Point: p.last}
	case now:
		return Interaction{Kind: Click, Point: p.last}
	case was:
		return Interaction{Kind: Release, Point: p.last}
	default:
		return Interaction{Kind: None}
	}
}
