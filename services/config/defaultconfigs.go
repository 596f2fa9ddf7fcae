package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: board id (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

// ESP32-2432S028R ("cheap yellow display"): ILI9341 320x240, XPT2046.
const cfgCYD = `{
  "touch": {
    "pressure_threshold": 400,
    "poll_ms": 1,
    "calibration": {
      "raw_x_min": 200, "raw_x_max": 3900,
      "raw_y_min": 3800, "raw_y_max": 240,
      "width": 320, "height": 240
    }
  },
  "render": {
    "fps": 30,
    "overlay": true,
    "window": 30,
    "width": 320,
    "height": 240
  },
  "telemetry": {
    "every": 30
  }
}`

// Host simulator: scripted pointer reporting screen coordinates directly.
const cfgCYDSim = `{
  "touch": {
    "pressure_threshold": 400,
    "poll_ms": 1,
    "calibration": {
      "raw_x_min": 0, "raw_x_max": 319,
      "raw_y_min": 0, "raw_y_max": 239,
      "width": 320, "height": 240
    }
  },
  "render": {
    "fps": 60,
    "overlay": true,
    "window": 60,
    "width": 320,
    "height": 240
  },
  "telemetry": {
    "every": 60,
    "topic_prefix": "cydkit/sim"
  }
}`

var embeddedConfigs = map[string][]byte{
	"cyd":     []byte(cfgCYD),
	"cyd-sim": []byte(cfgCYDSim),
}
