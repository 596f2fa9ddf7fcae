package touchinput

import (
	"context"
	"time"

	"cydkit-go/bus"
	"cydkit-go/gfx"
)

var (
	TopicEvent = bus.T("touch", "event")
	TopicState = bus.T("touch", "state")
)

// State is the retained payload on TopicState.
type State struct {
	Pressed bool
	Point   gfx.Point
}

// Service runs a Poller on a ticker and publishes its output: every click
// and release, drags only when the point moved, and the debounced state as
// a retained message whenever it flips.
type Service struct {
	p *Poller
}

func NewService(p *Poller) *Service { return &Service{p: p} }

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	defer conn.Disconnect()

	tick := time.NewTicker(s.p.cfg.PollInterval)
	defer tick.Stop()

	conn.Publish(conn.NewMessage(TopicState, State{Pressed: s.p.Pressed()}, true))

	var lastDrag gfx.Point
	for {
		select {
		case <-ctx.Done():
			println("Info: touch service stopping")
			return
		case <-tick.C:
			in := s.p.Sample()
			switch in.Kind {
			case None:
				continue
			case Drag:
				if in.Point == lastDrag {
					continue
				}
				lastDrag = in.Point
			case Click, Release:
				lastDrag = in.Point
				conn.Publish(conn.NewMessage(TopicState, State{Pressed: in.Kind == Click, Point: in.Point}, true))
			}
			conn.Publish(conn.NewMessage(TopicEvent, in, false))
		}
	}
}

// Start launches the polling loop; it ends when ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
