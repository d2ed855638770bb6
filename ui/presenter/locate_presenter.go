package presenter

import (
	"log/slog"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// LocatePresenter resolves user-entered coordinate text to a frame-relative
// point and reports it through the status view.
type LocatePresenter struct {
	Conv *frame.Converter
	View StatusView

	logger *slog.Logger
}

func NewLocatePresenter(conv *frame.Converter, view StatusView, logger *slog.Logger) *LocatePresenter {
	return &LocatePresenter{Conv: conv, View: view, logger: logger}
}

// Locate parses the text, classifies its coordinate space, converts it to a
// frame-relative point clamped to the frame and pushes the full status line
// for that point. Returns the frame coordinates.
func (p *LocatePresenter) Locate(text string) (int, int, error) {
	if p == nil || p.Conv == nil {
		return 0, 0, frame.ErrMalformedPoint
	}
	x, y, err := frame.ParsePoint(text)
	if err != nil {
		return 0, 0, err
	}
	fx, fy := p.Conv.NormalizeToFrame(x, y)
	fx, fy = p.Conv.ClampToFrame(fx, fy)
	sx, sy := p.Conv.FrameToScreen(fx, fy)
	if p.View != nil {
		p.View.SetStatusLine(frame.StatusLine(sx, sy, p.Conv))
	}
	if p.logger != nil {
		p.logger.Debug("point located", "input", text, "frame_x", fx, "frame_y", fy)
	}
	return fx, fy, nil
}
