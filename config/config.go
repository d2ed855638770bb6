package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for window tracking and region tools.
// Fields may be loaded from a JSON file and overridden by environment
// variables or command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Tracking parameters
	TargetWindow   string `json:"target_window"`
	PollIntervalMS int    `json:"poll_interval_ms"`
	// Known exact frame width used by border refinement; 0 disables it.
	TargetFrameWidth int `json:"target_frame_width"`
	// Viewport zoom applied to region tool hit-testing and grid overlay.
	GridZoom float64 `json:"grid_zoom"`
	// Region tool activated at startup: "box", "square" or "".
	DefaultTool string `json:"default_tool"`
	// Directory frame snapshots are written to.
	SnapshotDir string `json:"snapshot_dir"`

	// Bounding-box region persistence (frame-local pixels)
	RegionX float64 `json:"region_x"`
	RegionY float64 `json:"region_y"`
	RegionW float64 `json:"region_w"`
	RegionH float64 `json:"region_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		TargetWindow:     "WidgetInc",
		PollIntervalMS:   250,
		TargetFrameWidth: 2054,
		GridZoom:         1.0,
		DefaultTool:      "box",
		SnapshotDir:      ".",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.TargetWindow == "" {
		c.TargetWindow = "WidgetInc"
	}
	if c.PollIntervalMS < 10 {
		c.PollIntervalMS = 250
	}
	if c.PollIntervalMS > 5000 {
		c.PollIntervalMS = 5000
	}
	if c.TargetFrameWidth < 0 {
		c.TargetFrameWidth = 0
	}
	if c.GridZoom <= 0 {
		c.GridZoom = 1.0
	}
	switch c.DefaultTool {
	case "box", "square", "":
	default:
		c.DefaultTool = "box"
	}
	if c.SnapshotDir == "" {
		c.SnapshotDir = "."
	}
	if c.RegionW < 0 || c.RegionH < 0 {
		c.RegionX, c.RegionY, c.RegionW, c.RegionH = 0, 0, 0, 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). Environment variables
// (optionally from a .env file) override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			_ = cfg.Validate()
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnv()
	_ = cfg.Validate()
	return cfg, nil
}

// applyEnv overlays WIDGET_SPY_* environment variables, loading a local
// .env file first when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv("WIDGET_SPY_TARGET"); v != "" {
		c.TargetWindow = v
	}
	if v := os.Getenv("WIDGET_SPY_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PollIntervalMS = n
		}
	}
	if v := os.Getenv("WIDGET_SPY_FRAME_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TargetFrameWidth = n
		}
	}
	if v := os.Getenv("WIDGET_SPY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
