package presenter

import (
	"log/slog"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/ui/model"
)

// CursorSource samples the pointer position in screen coordinates.
type CursorSource func() (int, int, error)

// StatusView displays the formatted pointer status line.
type StatusView interface {
	SetStatusLine(string)
}

// PointerPresenter samples the pointer each tick and pushes the formatted
// status line to the model and view.
type PointerPresenter struct {
	Cursor CursorSource
	Conv   *frame.Converter
	Model  *model.PointerModel
	View   StatusView

	logger *slog.Logger
}

func NewPointerPresenter(cursor CursorSource, conv *frame.Converter, m *model.PointerModel, view StatusView, logger *slog.Logger) *PointerPresenter {
	return &PointerPresenter{Cursor: cursor, Conv: conv, Model: m, View: view, logger: logger}
}

// Tick samples the pointer once. Sampling failures leave the previous state
// in place.
func (p *PointerPresenter) Tick(now time.Time) {
	if p == nil || p.Cursor == nil || p.Conv == nil {
		return
	}
	x, y, err := p.Cursor()
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("pointer sample failed", "error", err)
		}
		return
	}
	line := frame.StatusLine(x, y, p.Conv)
	if p.Model != nil {
		p.Model.Set(x, y, line)
	}
	if p.View != nil {
		p.View.SetStatusLine(line)
	}
}
