package app

import (
	"log/slog"
	"os"

	"github.com/varkel/widget-spy-go/capture"
	"github.com/varkel/widget-spy-go/clipboard"
	"github.com/varkel/widget-spy-go/config"
	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/domain/region"
	"github.com/varkel/widget-spy-go/ui/model"
	"github.com/varkel/widget-spy-go/ui/presenter"
	"github.com/varkel/widget-spy-go/ui/view"
	"github.com/varkel/widget-spy-go/window"
)

// Container assembles models, domain services, presenters and the view.
type Container struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Converter *frame.Converter
	CopyMode  *frame.CopyMode

	Frames   *model.FrameModel
	Pointer  *model.PointerModel
	Session  *model.SessionModel
	Tracking *model.TrackingModel

	View *view.ConsoleView

	TrackPresenter    *presenter.TrackPresenter
	PointerPresenter  *presenter.PointerPresenter
	SessionPresenter  *presenter.SessionPresenter
	RegionPresenter   *presenter.RegionPresenter
	SnapshotPresenter *presenter.SnapshotPresenter
	LocatePresenter   *presenter.LocatePresenter
	Loop              *presenter.Loop
}

// clipboardSink adapts the clipboard package to the presenter contract.
type clipboardSink struct{}

func (clipboardSink) Write(text string) error { return clipboard.Write(text) }

// BuildContainer constructs all components. Collaborators (window detector,
// pixel sampler, cursor source, clipboard) are the platform implementations;
// tests wire their own fakes directly against the presenters.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *Container {
	c := &Container{Config: cfg, CfgPath: cfgPath, Logger: logger}

	c.Converter = frame.NewConverter()
	c.CopyMode = frame.NewCopyMode(c.Converter)

	c.Frames = model.NewFrameModel()
	c.Pointer = model.NewPointerModel()
	c.Session = model.NewSessionModel()
	c.Tracking = &model.TrackingModel{}
	c.Tracking.SetEnabled(true)

	c.View = view.NewConsoleView(os.Stdout)

	c.TrackPresenter = presenter.NewTrackPresenter(
		window.NewDetector(),
		capture.SamplePixel,
		c.Converter,
		c.Frames,
		c.Tracking,
		cfg.TargetWindow,
		cfg.TargetFrameWidth,
		logger,
	)
	c.PointerPresenter = presenter.NewPointerPresenter(
		window.CursorPos,
		c.Converter,
		c.Pointer,
		c.View,
		logger,
	)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Frames, c.View)
	c.SnapshotPresenter = presenter.NewSnapshotPresenter(capture.GrabRect, c.Converter, cfg.SnapshotDir, logger)
	c.LocatePresenter = presenter.NewLocatePresenter(c.Converter, c.View, logger)
	c.RegionPresenter = presenter.NewRegionPresenter(
		c.CopyMode,
		c.Converter,
		clipboardSink{},
		func() float64 { return cfg.GridZoom },
		c.persistRegion,
		logger,
	)

	switch cfg.DefaultTool {
	case "box":
		c.RegionPresenter.ActivateBox(c.persistedRegion())
	case "square":
		c.RegionPresenter.ActivateSquare()
	}

	c.Loop = presenter.NewLoop(c.TrackPresenter, c.PointerPresenter, c.SessionPresenter, c.RegionPresenter, nil)
	return c
}

// persistedRegion restores the bounding-box rectangle saved in the config
// file, if any.
func (c *Container) persistedRegion() *region.Rect {
	if c.Config == nil || c.Config.RegionW <= 0 || c.Config.RegionH <= 0 {
		return nil
	}
	return &region.Rect{
		X: c.Config.RegionX,
		Y: c.Config.RegionY,
		W: c.Config.RegionW,
		H: c.Config.RegionH,
	}
}

// persistRegion saves the committed bounding-box rectangle back to the
// config file, best-effort.
func (c *Container) persistRegion(r region.Rect) {
	if c.Config == nil || c.CfgPath == "" {
		return
	}
	c.Config.RegionX, c.Config.RegionY = r.X, r.Y
	c.Config.RegionW, c.Config.RegionH = r.W, r.H
	if err := c.Config.Save(c.CfgPath); err != nil && c.Logger != nil {
		c.Logger.Debug("region persist failed", "error", err)
	}
}
