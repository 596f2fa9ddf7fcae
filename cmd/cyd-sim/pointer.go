package main

import (
	"time"

	"tinygo.org/x/drivers/touch"
)

// scriptedPointer replays a press/drag/release gesture once a second, with
// contact bounce on press and release. Coordinates are already in screen
// space, matching the cyd-sim calibration.
type scriptedPointer struct {
	start time.Time
	now   func() time.Time
}

func newScriptedPointer(start time.Time) *scriptedPointer {
	return &scriptedPointer{start: start, now: time.Now}
}

const (
	pressAt   = 300 * time.Millisecond
	releaseAt = 700 * time.Millisecond
	bounceFor = 20 * time.Millisecond
	firmZ     = 2000
)

func (p *scriptedPointer) ReadTouchPoint() touch.Point {
	t := p.now().Sub(p.start) % time.Second
	at := func(z int) touch.Point {
		span := releaseAt - pressAt
		x := 60 + int(200*(t-pressAt)/span)
		return touch.Point{X: x, Y: 120, Z: z}
	}
	switch {
	case t < pressAt, t >= releaseAt+bounceFor:
		return touch.Point{}
	case t < pressAt+bounceFor, t >= releaseAt:
		// 2ms on, 2ms off
		if (t/(2*time.Millisecond))%2 == 0 {
			return at(firmZ)
		}
		return at(0)
	default:
		return at(firmZ)
	}
}
