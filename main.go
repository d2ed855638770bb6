package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/varkel/widget-spy-go/app"
	"github.com/varkel/widget-spy-go/config"
)

func main() {
	var (
		cfgPath  = flag.String("config", "widget-spy.json", "path to the JSON config file")
		target   = flag.String("target", "", "target window title (overrides config)")
		interval = flag.Int("interval", 0, "poll interval in milliseconds (overrides config)")
		debug    = flag.Bool("debug", false, "enable debug logging and runtime metrics")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		// Fall back to the defaults bundled in cfg.
		NewLogger(slog.LevelInfo).Warn("config load failed", "path", *cfgPath, "error", err)
	}
	if *target != "" {
		cfg.TargetWindow = *target
	}
	if *interval > 0 {
		cfg.PollIntervalMS = *interval
	}
	if *debug {
		cfg.Debug = true
	}
	_ = cfg.Validate()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, *cfgPath, logger)
	if err := application.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("tracker failed", "error", err)
		os.Exit(1)
	}
}
