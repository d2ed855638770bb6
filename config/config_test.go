package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TargetWindow != "WidgetInc" {
		t.Fatalf("TargetWindow = %q", cfg.TargetWindow)
	}
	if cfg.PollIntervalMS != 250 {
		t.Fatalf("PollIntervalMS = %d", cfg.PollIntervalMS)
	}
	if cfg.TargetFrameWidth != 2054 {
		t.Fatalf("TargetFrameWidth = %d", cfg.TargetFrameWidth)
	}
	if cfg.GridZoom != 1.0 {
		t.Fatalf("GridZoom = %v", cfg.GridZoom)
	}
	if cfg.DefaultTool != "box" {
		t.Fatalf("DefaultTool = %q", cfg.DefaultTool)
	}
	if cfg.SnapshotDir != "." {
		t.Fatalf("SnapshotDir = %q", cfg.SnapshotDir)
	}
}

func TestValidate_ClampsRanges(t *testing.T) {
	cfg := &Config{
		TargetWindow:     "",
		PollIntervalMS:   1,
		TargetFrameWidth: -5,
		GridZoom:         -2,
		DefaultTool:      "lasso",
		RegionW:          -10,
		RegionH:          20,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.TargetWindow != "WidgetInc" {
		t.Fatalf("TargetWindow = %q", cfg.TargetWindow)
	}
	if cfg.PollIntervalMS != 250 {
		t.Fatalf("PollIntervalMS = %d", cfg.PollIntervalMS)
	}
	if cfg.TargetFrameWidth != 0 {
		t.Fatalf("TargetFrameWidth = %d", cfg.TargetFrameWidth)
	}
	if cfg.GridZoom != 1.0 {
		t.Fatalf("GridZoom = %v", cfg.GridZoom)
	}
	if cfg.DefaultTool != "box" {
		t.Fatalf("DefaultTool = %q", cfg.DefaultTool)
	}
	if cfg.RegionX != 0 || cfg.RegionY != 0 || cfg.RegionW != 0 || cfg.RegionH != 0 {
		t.Fatalf("region = (%v, %v, %v, %v), want cleared", cfg.RegionX, cfg.RegionY, cfg.RegionW, cfg.RegionH)
	}

	cfg.PollIntervalMS = 60000
	_ = cfg.Validate()
	if cfg.PollIntervalMS != 5000 {
		t.Fatalf("PollIntervalMS = %d, want 5000 cap", cfg.PollIntervalMS)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetWindow != "WidgetInc" || cfg.PollIntervalMS != 250 {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget-spy.json")
	in := DefaultConfig()
	in.TargetWindow = "OtherWindow"
	in.PollIntervalMS = 500
	in.DefaultTool = "square"
	in.RegionX, in.RegionY, in.RegionW, in.RegionH = 10, 20, 100, 50
	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *out != *in {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget-spy.json")
	in := DefaultConfig()
	in.TargetWindow = "FromFile"
	if err := in.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("WIDGET_SPY_TARGET", "FromEnv")
	t.Setenv("WIDGET_SPY_INTERVAL_MS", "750")
	t.Setenv("WIDGET_SPY_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetWindow != "FromEnv" {
		t.Fatalf("TargetWindow = %q", cfg.TargetWindow)
	}
	if cfg.PollIntervalMS != 750 {
		t.Fatalf("PollIntervalMS = %d", cfg.PollIntervalMS)
	}
	if !cfg.Debug {
		t.Fatal("Debug should be overridden to true")
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget-spy.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a decode error")
	}
}
