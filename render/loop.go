package render

import (
	"context"
	"image/color"
	"time"

	"cydkit-go/bus"
	"cydkit-go/errcode"
	"cydkit-go/gfx"
	"cydkit-go/profiler"
	"cydkit-go/touchinput"
	"cydkit-go/x/timex"
)

var TopicFrame = bus.T("render", "frame")

// Scene draws one frame. in is the interaction picked for this frame, Kind
// None when there was no input.
type Scene func(t gfx.DrawTarget[color.RGBA], in touchinput.Interaction) error

// Flusher is implemented by surfaces that need an explicit push to the
// screen, such as surface.Panel.
type Flusher interface {
	Flush() error
}

type Config struct {
	FPS     uint32
	Overlay bool
	Window  int            // frames in the rolling average
	Clock   profiler.Clock // nil: wall clock
}

func (c *Config) applyDefaults() {
	if c.FPS == 0 {
		c.FPS = 30
	}
	if c.Window <= 0 {
		c.Window = 30
	}
	if c.Clock == nil {
		c.Clock = sysClock{}
	}
}

type Loop struct {
	cfg     Config
	disp    *profiler.Display[color.RGBA]
	timer   *FrameTimer
	window  *Window
	overlay *Overlay
	scene   Scene

	pending []touchinput.Interaction
}

// NewLoop wraps target in a profiler owned by the loop.
func NewLoop(target gfx.DrawTarget[color.RGBA], scene Scene, cfg Config) *Loop {
	cfg.applyDefaults()
	disp := profiler.New(target, profiler.WithClock(cfg.Clock))
	l := &Loop{
		cfg:    cfg,
		disp:   disp,
		timer:  NewFrameTimer(disp, cfg.Clock),
		window: NewWindow(cfg.Window),
		scene:  scene,
	}
	if cfg.Overlay {
		l.overlay = NewOverlay()
	}
	return l
}

func (l *Loop) Display() *profiler.Display[color.RGBA] { return l.disp }

// Avg is the rolling average over the last Config.Window frames.
func (l *Loop) Avg() FrameStats { return l.window.Avg() }

// Queue adds an interaction for upcoming frames. Consecutive drags collapse
// into the newest one; clicks and releases are kept in order.
func (l *Loop) Queue(in touchinput.Interaction) {
	if in.Kind == touchinput.None {
		return
	}
	if n := len(l.pending); n > 0 && in.Kind == touchinput.Drag && l.pending[n-1].Kind == touchinput.Drag {
		l.pending[n-1] = in
		return
	}
	l.pending = append(l.pending, in)
}

func (l *Loop) next() touchinput.Interaction {
	if len(l.pending) == 0 {
		return touchinput.Interaction{}
	}
	in := l.pending[0]
	l.pending = l.pending[1:]
	return in
}

// Frame renders one frame. prep runs inside the frame before drawing starts
// and may be nil.
func (l *Loop) Frame(prep func()) (FrameStats, error) {
	l.timer.Begin()
	if prep != nil {
		prep()
	}
	in := l.next()

	l.timer.BeginDraw()
	if err := l.scene(l.disp, in); err != nil {
		l.timer.End()
		return FrameStats{}, errcode.Wrap(errcode.Of(err), "render.scene", err)
	}
	if l.overlay != nil {
		if err := l.overlay.Draw(l.disp, l.window.Avg().String()); err != nil {
			println("Error: overlay:", err.Error())
		}
	}
	if f, ok := l.disp.Target().(Flusher); ok {
		if err := f.Flush(); err != nil {
			println("Error: flush:", err.Error())
		}
	}
	st := l.timer.End()
	l.window.Add(st)
	return st, nil
}

// Run renders at Config.FPS until ctx is cancelled or the scene fails.
// Touch events are read from the bus and frame stats are published on
// TopicFrame for every frame that drew something.
func (l *Loop) Run(ctx context.Context, conn *bus.Connection) error {
	events := conn.Subscribe(touchinput.TopicEvent)
	defer conn.Unsubscribe(events)

	tick := time.NewTicker(timex.PeriodFromHz(l.cfg.FPS))
	defer tick.Stop()

	drain := func() {
		for {
			select {
			case m, ok := <-events.Channel():
				if !ok {
					return
				}
				if in, ok := m.Payload.(touchinput.Interaction); ok {
					l.Queue(in)
				}
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			println("Info: render loop stopping")
			return nil
		case <-tick.C:
			st, err := l.Frame(drain)
			if err != nil {
				println("Error:", err.Error())
				return err
			}
			if st.Draw > 0 {
				conn.Publish(conn.NewMessage(TopicFrame, st, false))
			}
		}
	}
}
