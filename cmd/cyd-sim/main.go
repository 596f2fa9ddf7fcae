// cyd-sim runs the touch + render pipeline on the host against an in-memory
// framebuffer and a scripted, bouncy touch controller.
package main

import (
	"context"
	"os"
	"time"

	"cydkit-go/bus"
	"cydkit-go/render"
	"cydkit-go/services/config"
	"cydkit-go/services/telemetry"
	"cydkit-go/surface"
	"cydkit-go/touchinput"

	"github.com/spf13/cobra"
)

var (
	flagBoard    string
	flagDuration time.Duration
	flagBroker   string
)

var rootCmd = &cobra.Command{
	Use:   "cyd-sim",
	Short: "Run the touch and render loop on a simulated display",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&flagBoard, "board", "cyd-sim", "embedded board config to load")
	rootCmd.Flags().DurationVar(&flagDuration, "duration", 5*time.Second, "how long to run")
	rootCmd.Flags().StringVar(&flagBroker, "broker", "", "MQTT broker for telemetry, e.g. tcp://localhost:1883")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagBoard)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagDuration)
	defer cancel()
	ctx = context.WithValue(ctx, config.CtxDeviceKey, flagBoard)

	b := bus.NewBus(16)
	if err := config.NewConfigService().Start(ctx, b.NewConnection("config")); err != nil {
		return err
	}

	broker := flagBroker
	if broker == "" {
		broker = cfg.Telemetry.Broker
	}
	var pub telemetry.Publisher
	if broker != "" {
		m, err := telemetry.DialMQTT(broker, cfg.Telemetry.ClientID, 5*time.Second)
		if err != nil {
			println("Error: telemetry sink disabled:", err.Error())
		} else {
			defer m.Close()
			pub = m
		}
	}
	tel := telemetry.NewService(telemetry.Config{
		Every:       cfg.Telemetry.Every,
		TopicPrefix: cfg.Telemetry.TopicPrefix,
	}, cmd.OutOrStdout(), pub)
	if err := tel.Start(ctx, b.NewConnection("telemetry")); err != nil {
		return err
	}

	poller := touchinput.NewPoller(newScriptedPointer(time.Now()), cfg.Touch.PollerConfig())
	if err := touchinput.NewService(poller).Start(ctx, b.NewConnection("touch")); err != nil {
		return err
	}

	w, h := cfg.Render.Width, cfg.Render.Height
	if w <= 0 || h <= 0 {
		w, h = 320, 240
	}
	loop := render.NewLoop(surface.NewFramebuffer(w, h), newDemo().Draw, cfg.Render.LoopConfig())

	println("Info: cyd-sim running board", flagBoard, "for", flagDuration.String())
	err = loop.Run(ctx, b.NewConnection("render"))
	println("Info: average", loop.Avg().String())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
