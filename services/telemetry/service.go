// Package telemetry reports frame timings and touch activity: console lines
// in the usual "Info:" style, and optionally JSON records to an MQTT broker.
package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cydkit-go/bus"
	"cydkit-go/render"
	"cydkit-go/services/config"
	"cydkit-go/touchinput"
)

var topicConfigTelemetry = config.Topic("telemetry")

// Publisher is the outbound sink; MQTT implements it.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type Config struct {
	Every       int    // print every Nth frame
	TopicPrefix string // prefix of the sink topics
}

func (c *Config) applyDefaults() {
	if c.Every <= 0 {
		c.Every = 1
	}
	if c.TopicPrefix == "" {
		c.TopicPrefix = "cydkit"
	}
}

type Service struct {
	cfg    Config
	out    io.Writer
	pub    Publisher
	frames uint64
}

// NewService writes to out, or stdout when out is nil. pub may be nil.
func NewService(cfg Config, out io.Writer, pub Publisher) *Service {
	cfg.applyDefaults()
	if out == nil {
		out = os.Stdout
	}
	return &Service{cfg: cfg, out: out, pub: pub}
}

// frameRecord is the JSON sent to the sink, durations in microseconds.
type frameRecord struct {
	Frame          uint64 `json:"frame"`
	Prep           int64  `json:"prep_us"`
	Draw           int64  `json:"draw_us"`
	Proc           int64  `json:"proc_us"`
	Total          int64  `json:"total_us"`
	DrawIter       int64  `json:"draw_iter_us"`
	FillContiguous int64  `json:"fill_contiguous_us"`
	FillSolid      int64  `json:"fill_solid_us"`
}

func newFrameRecord(st render.FrameStats) frameRecord {
	return frameRecord{
		Frame:          st.Frame,
		Prep:           st.Prep.Microseconds(),
		Draw:           st.Draw.Microseconds(),
		Proc:           st.Proc.Microseconds(),
		Total:          st.Total.Microseconds(),
		DrawIter:       st.Breakdown.DrawIter.Microseconds(),
		FillContiguous: st.Breakdown.FillContiguous.Microseconds(),
		FillSolid:      st.Breakdown.FillSolid.Microseconds(),
	}
}

func (s *Service) onFrame(st render.FrameStats) {
	s.frames++
	if s.frames%uint64(s.cfg.Every) != 0 {
		return
	}
	fmt.Fprintf(s.out, "Info: frame %d %s\n", st.Frame, st)
	if s.pub == nil {
		return
	}
	b, err := json.Marshal(newFrameRecord(st))
	if err != nil {
		println("Error: telemetry encode:", err.Error())
		return
	}
	if err := s.pub.Publish(s.cfg.TopicPrefix+"/frame", b); err != nil {
		println("Error: telemetry publish:", err.Error())
	}
}

func (s *Service) onTouch(in touchinput.Interaction) {
	if in.Kind == touchinput.Drag {
		return
	}
	fmt.Fprintf(s.out, "Info: touch %s at %d,%d\n", in.Kind, in.Point.X, in.Point.Y)
}

func (s *Service) onConfig(t config.Telemetry) {
	s.cfg.Every = t.Every
	if t.TopicPrefix != "" {
		s.cfg.TopicPrefix = t.TopicPrefix
	}
	s.cfg.applyDefaults()
	fmt.Fprintf(s.out, "Info: telemetry every %d frames\n", s.cfg.Every)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	defer conn.Disconnect()

	cfgSub := conn.Subscribe(topicConfigTelemetry)
	frameSub := conn.Subscribe(render.TopicFrame)
	touchSub := conn.Subscribe(touchinput.TopicEvent)

	for {
		select {
		case <-ctx.Done():
			println("Info: telemetry service stopping")
			return
		case msg := <-cfgSub.Channel():
			if t, ok := msg.Payload.(config.Telemetry); ok {
				s.onConfig(t)
			}
		case msg := <-frameSub.Channel():
			if st, ok := msg.Payload.(render.FrameStats); ok {
				s.onFrame(st)
			}
		case msg := <-touchSub.Channel():
			if in, ok := msg.Payload.(touchinput.Interaction); ok {
				s.onTouch(in)
			}
		}
	}
}

// Start the telemetry service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
