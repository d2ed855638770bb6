package presenter

import (
	"log/slog"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/ui/model"
)

// WindowSource locates the target window's client rectangle.
type WindowSource interface {
	ClientRect(title string) (frame.Area, error)
}

// EnabledModel reports whether tracking is enabled.
type EnabledModel interface{ Enabled() bool }

// TrackPresenter runs the per-tick detection pipeline: client rectangle ->
// resolved frame -> refined frame -> converter and model. Collaborator
// failures and degenerate geometry degrade to a cleared frame; they never
// propagate.
type TrackPresenter struct {
	Source      WindowSource
	Sampler     frame.PixelSampler
	Conv        *frame.Converter
	Model       *model.FrameModel
	Tracking    EnabledModel
	Target      string
	TargetWidth int

	logger *slog.Logger
}

func NewTrackPresenter(source WindowSource, sampler frame.PixelSampler, conv *frame.Converter, m *model.FrameModel, tracking EnabledModel, target string, targetWidth int, logger *slog.Logger) *TrackPresenter {
	return &TrackPresenter{
		Source:      source,
		Sampler:     sampler,
		Conv:        conv,
		Model:       m,
		Tracking:    tracking,
		Target:      target,
		TargetWidth: targetWidth,
		logger:      logger,
	}
}

// Tick performs one detection pass.
func (p *TrackPresenter) Tick(now time.Time) {
	if p == nil || p.Source == nil || p.Conv == nil || p.Model == nil {
		return
	}
	if p.Tracking != nil && !p.Tracking.Enabled() {
		return
	}
	client, err := p.Source.ClientRect(p.Target)
	if err != nil {
		p.degrade("window lookup", err)
		return
	}
	resolved, err := frame.Resolve(client)
	if err != nil {
		p.degrade("frame resolve", err)
		return
	}
	refined := resolved
	if p.TargetWidth > 0 && p.Sampler != nil {
		refined = frame.Refine(resolved, p.TargetWidth, p.Sampler)
	}
	p.Conv.SetFrame(refined)
	p.Model.SetFrame(refined)
}

func (p *TrackPresenter) degrade(stage string, err error) {
	p.Model.RecordMiss()
	p.Model.Clear()
	p.Conv.Clear()
	if p.logger != nil {
		p.logger.Debug("tracking degraded", "stage", stage, "error", err)
	}
}
