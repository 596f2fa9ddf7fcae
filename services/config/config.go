package config

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"cydkit-go/bus"
	"cydkit-go/errcode"
	"cydkit-go/render"
	"cydkit-go/touchinput"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	CtxDeviceKey = "device" // context key used for the board id
	DefaultBoard = "cyd"
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedConfigs[board]
	return b, ok
}

// -----------------------------------------------------------------------------
// Sections
// -----------------------------------------------------------------------------

type Calibration struct {
	RawXMin int  `json:"raw_x_min"`
	RawXMax int  `json:"raw_x_max"`
	RawYMin int  `json:"raw_y_min"`
	RawYMax int  `json:"raw_y_max"`
	Width   int  `json:"width"`
	Height  int  `json:"height"`
	SwapXY  bool `json:"swap_xy"`
	OffsetX int  `json:"offset_x"`
	OffsetY int  `json:"offset_y"`
}

type Touch struct {
	PressureThreshold int          `json:"pressure_threshold"`
	PollMs            int          `json:"poll_ms"`
	SeedPressed       bool         `json:"seed_pressed"`
	Calibration       *Calibration `json:"calibration,omitempty"`
}

// PollerConfig converts the section; unset fields fall back to the poller's
// defaults.
func (t Touch) PollerConfig() touchinput.Config {
	cfg := touchinput.Config{
		PressureThreshold: t.PressureThreshold,
		PollInterval:      time.Duration(t.PollMs) * time.Millisecond,
		SeedPressed:       t.SeedPressed,
	}
	if c := t.Calibration; c != nil {
		cfg.Calibration = touchinput.Calibration{
			RawXMin: c.RawXMin, RawXMax: c.RawXMax,
			RawYMin: c.RawYMin, RawYMax: c.RawYMax,
			Width: c.Width, Height: c.Height,
			SwapXY:  c.SwapXY,
			OffsetX: c.OffsetX, OffsetY: c.OffsetY,
		}
	}
	return cfg
}

type Render struct {
	FPS     uint32 `json:"fps"`
	Overlay bool   `json:"overlay"`
	Window  int    `json:"window"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (r Render) LoopConfig() render.Config {
	return render.Config{FPS: r.FPS, Overlay: r.Overlay, Window: r.Window}
}

type Telemetry struct {
	Every       int    `json:"every"`
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	TopicPrefix string `json:"topic_prefix"`
}

type Board struct {
	Touch     Touch     `json:"touch"`
	Render    Render    `json:"render"`
	Telemetry Telemetry `json:"telemetry"`
}

// Load decodes the embedded config of a board.
func Load(board string) (Board, error) {
	raw, ok := EmbeddedConfigLookup(board)
	if !ok || len(raw) == 0 {
		return Board{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.load", Msg: board}
	}
	var b Board
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Board{}, errcode.Wrap(errcode.InvalidPayload, "config.load", err)
	}
	return b, nil
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// publishConfig loads the board named in ctx and publishes each section as a
// retained message on config/<section>.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	board, _ := ctx.Value(CtxDeviceKey).(string)
	if board == "" {
		board = DefaultBoard
	}
	b, err := Load(board)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "touch"), b.Touch, true))
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "render"), b.Render, true))
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "telemetry"), b.Telemetry, true))
	return nil
}

// Start publishes the config synchronously so that retained sections are in
// place before any other service subscribes.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) error {
	if err := s.publishConfig(ctx, conn); err != nil {
		println("Error: config:", err.Error())
		return err
	}
	return nil
}

// Topic returns config/<section>.
func Topic(section string) bus.Topic { return bus.T(configPrefix, section) }
