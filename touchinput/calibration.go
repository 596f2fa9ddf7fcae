package touchinput

import (
	"cydkit-go/gfx"
	"cydkit-go/x/mathx"

	"tinygo.org/x/drivers/touch"
)

// Calibration maps raw controller readings to screen pixels. Raw ranges may
// be reversed to mirror an axis; SwapXY handles panels mounted in landscape
// while the controller reports portrait.
type Calibration struct {
	RawXMin, RawXMax int
	RawYMin, RawYMax int
	Width, Height    int
	SwapXY           bool
	// Offsets are applied after mapping, then the point is clamped again.
	OffsetX, OffsetY int
}

// DefaultCalibration fits a 320x240 landscape panel on a 12-bit XPT2046.
func DefaultCalibration() Calibration {
	return Calibration{
		RawXMin: 200, RawXMax: 3900,
		RawYMin: 3800, RawYMax: 240,
		Width: 320, Height: 240,
	}
}

func (c Calibration) Map(p touch.Point) gfx.Point {
	rx, ry := p.X, p.Y
	if c.SwapXY {
		rx, ry = ry, rx
	}
	x := mathx.MapRange(rx, c.RawXMin, c.RawXMax, 0, c.Width-1)
	y := mathx.MapRange(ry, c.RawYMin, c.RawYMax, 0, c.Height-1)
	return gfx.Point{
		X: mathx.Clamp(x+c.OffsetX, 0, c.Width-1),
		Y: mathx.Clamp(y+c.OffsetY, 0, c.Height-1),
	}
}
