package app

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/varkel/widget-spy-go/clipboard"
	"github.com/varkel/widget-spy-go/config"
	"github.com/varkel/widget-spy-go/debug"
)

// App owns the poll-driven run loop: a single ticker drives window
// re-detection, pointer sampling and region upkeep. Stopping the ticker
// halts all core activity; no in-flight work needs cooperative cancellation.
type App struct {
	container *Container
	interval  time.Duration
	logger    *slog.Logger
}

func New(cfg *config.Config, cfgPath string, logger *slog.Logger) *App {
	return &App{
		container: BuildContainer(cfg, cfgPath, logger),
		interval:  time.Duration(cfg.PollIntervalMS) * time.Millisecond,
		logger:    logger,
	}
}

// Container exposes the wired components.
func (a *App) Container() *Container { return a.container }

// Run drives the update loop until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := clipboard.Init(); err != nil {
		// Region commits degrade to log-only output.
		a.logger.Warn("clipboard unavailable", "error", err)
	}
	if a.container.Config.Debug {
		debug.StartMemLogger(2*time.Second, a.logger)
		debug.StartGoroutineLogger(time.Second, a.logger)
	}

	a.logger.Info("tracker started",
		"target", a.container.Config.TargetWindow,
		"interval", a.interval,
	)
	go a.commandLoop(os.Stdin)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			session, total := a.container.View.Session()
			a.logger.Info("tracker stopped", "session", session, "total_locked", total)
			return ctx.Err()
		case <-ticker.C:
			a.container.Loop.Tick()
		}
	}
}

// commandLoop reads console commands until EOF. It is the text stand-in for
// the viewer's buttons and key bindings.
func (a *App) commandLoop(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			a.handleCommand(line)
		}
	}
}

// handleCommand dispatches one console command:
//
//	snap            capture the current frame to a PNG
//	locate <coords> resolve coordinate text and print its status line
//	copy            cycle the clipboard copy mode
//	grid on|off     toggle the grid overlay
//	tool box|square switch the active region tool
//	+ / -           step the square size
func (a *App) handleCommand(line string) {
	c := a.container
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "snap":
		path, err := c.SnapshotPresenter.Capture()
		if err != nil {
			a.logger.Warn("snapshot failed", "error", err)
			return
		}
		a.logger.Info("snapshot saved", "path", path)
	case "locate":
		fx, fy, err := c.LocatePresenter.Locate(rest)
		if err != nil {
			a.logger.Warn("locate failed", "input", rest, "error", err)
			return
		}
		a.logger.Info("located", "frame_x", fx, "frame_y", fy)
	case "copy":
		a.logger.Info("copy mode", "mode", c.RegionPresenter.CycleCopyMode().String())
	case "grid":
		c.RegionPresenter.SetOverlay(rest == "on")
	case "tool":
		switch rest {
		case "box":
			c.RegionPresenter.ActivateBox(c.persistedRegion())
		case "square":
			c.RegionPresenter.ActivateSquare()
		default:
			a.logger.Warn("unknown tool", "tool", rest)
		}
	case "+":
		c.RegionPresenter.SizeUp()
	case "-":
		c.RegionPresenter.SizeDown()
	default:
		a.logger.Warn("unknown command", "command", cmd)
	}
}
