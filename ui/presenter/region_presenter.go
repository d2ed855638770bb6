package presenter

import (
	"log/slog"
	"math"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
	"github.com/varkel/widget-spy-go/domain/overlay"
	"github.com/varkel/widget-spy-go/domain/region"
)

// ClipboardWriter receives formatted region output.
type ClipboardWriter interface {
	Write(text string) error
}

// RegionPresenter routes pointer gestures to the active region tool and
// turns committed rectangles into clipboard text in the current copy mode.
// Pointer events arrive in viewport coordinates; the zoom scale converts
// them to frame-local units.
type RegionPresenter struct {
	box      *region.BoxTool
	square   *region.SquareTool
	active   region.Tool
	copyMode *frame.CopyMode
	conv     *frame.Converter
	clip     ClipboardWriter
	store    func(region.Rect)
	zoom     func() float64

	overlayOn    bool
	pressed      bool
	lastX, lastY float64

	logger *slog.Logger
}

// NewRegionPresenter builds the presenter and both tool variants. The store
// callback, when non-nil, persists the bounding-box rectangle on commit.
func NewRegionPresenter(copyMode *frame.CopyMode, conv *frame.Converter, clip ClipboardWriter, zoom func() float64, store func(region.Rect), logger *slog.Logger) *RegionPresenter {
	p := &RegionPresenter{
		copyMode: copyMode,
		conv:     conv,
		clip:     clip,
		store:    store,
		zoom:     zoom,
		logger:   logger,
	}
	p.box = region.NewBoxTool(region.ReporterFunc(p.commitBox))
	p.square = region.NewSquareTool(region.ReporterFunc(p.commit))
	return p
}

// ActivateBox makes the bounding-box tool current, restoring a persisted
// rectangle when one is supplied.
func (p *RegionPresenter) ActivateBox(restore *region.Rect) {
	if restore != nil {
		p.box.Restore(*restore)
	}
	p.active = p.box
}

// ActivateSquare makes the fixed-grid-square tool current.
func (p *RegionPresenter) ActivateSquare() {
	p.active = p.square
}

// Deactivate drops the current tool; pointer events are ignored until a tool
// is activated again.
func (p *RegionPresenter) Deactivate() {
	if p.active != nil {
		p.active.FinishInteraction()
	}
	p.active = nil
	p.pressed = false
}

// Active returns the current tool, if any.
func (p *RegionPresenter) Active() (region.Tool, bool) {
	return p.active, p.active != nil
}

// Square returns the square variant for discrete size operations.
func (p *RegionPresenter) Square() *region.SquareTool { return p.square }

// SetOverlay toggles the grid overlay; grid snapping applies only while it
// is active.
func (p *RegionPresenter) SetOverlay(on bool) { p.overlayOn = on }

// Tick lazily spawns the active tool's default rectangle once frame
// dimensions are known.
func (p *RegionPresenter) Tick(now time.Time) {
	if p == nil || p.active == nil || p.conv == nil {
		return
	}
	if a, ok := p.conv.Frame(); ok {
		p.active.EnsureCreated(float64(a.Width), float64(a.Height))
	}
}

// PointerDown starts a resize when the point grabs a handle, otherwise a
// drag when it falls inside the rectangle.
func (p *RegionPresenter) PointerDown(px, py float64) {
	if p == nil || p.active == nil {
		return
	}
	scale := p.scale()
	fx, fy := px/scale, py/scale
	if d, ok := p.active.DetectResizeDirection(fx, fy, scale); ok {
		p.active.BeginResize(d)
	} else if r, ok := p.active.Rect(); ok && r.Contains(fx, fy) {
		p.active.BeginDrag()
	}
	p.pressed = true
	p.lastX, p.lastY = px, py
}

// PointerMove applies the motion delta to the active gesture.
func (p *RegionPresenter) PointerMove(px, py float64) {
	if p == nil || p.active == nil || !p.pressed {
		return
	}
	dx, dy := px-p.lastX, py-p.lastY
	p.lastX, p.lastY = px, py
	p.active.ApplyMotion(dx, dy, p.scale(), p.snapFunc())
}

// PointerUp ends the gesture and commits the rectangle.
func (p *RegionPresenter) PointerUp() {
	if p == nil || p.active == nil {
		return
	}
	p.pressed = false
	p.active.FinishInteraction()
}

// CycleCopyMode advances the output space.
func (p *RegionPresenter) CycleCopyMode() frame.Mode {
	if p == nil || p.copyMode == nil {
		return frame.ModePercentage
	}
	return p.copyMode.Cycle()
}

// SizeUp grows the square one lattice step when it is the active tool.
func (p *RegionPresenter) SizeUp() {
	if p != nil && p.active == p.square {
		p.square.SizeUp()
	}
}

// SizeDown shrinks the square one lattice step when it is the active tool.
func (p *RegionPresenter) SizeDown() {
	if p != nil && p.active == p.square {
		p.square.SizeDown()
	}
}

// GridLines derives the frame-wide overlay lines for the current zoom tier.
// Empty while the overlay is off or no frame is resolved.
func (p *RegionPresenter) GridLines() []overlay.Line {
	if p == nil || !p.overlayOn || p.conv == nil {
		return nil
	}
	a, ok := p.conv.Frame()
	if !ok {
		return nil
	}
	step := overlay.StepForZoom(p.currentZoom())
	return overlay.Generate(a.Width, a.Height, step, step)
}

func (p *RegionPresenter) scale() float64 {
	z := p.currentZoom()
	if z <= 0 {
		return 1
	}
	return z
}

func (p *RegionPresenter) currentZoom() float64 {
	if p.zoom == nil {
		return 1
	}
	return p.zoom()
}

// snapFunc returns the edge-rounding callback while the grid overlay is
// active, nil otherwise.
func (p *RegionPresenter) snapFunc() region.SnapFunc {
	if !p.overlayOn {
		return nil
	}
	step := float64(overlay.StepForZoom(p.currentZoom()))
	return func(v float64) float64 {
		return math.Round(v/step) * step
	}
}

func (p *RegionPresenter) commitBox(r region.Rect) {
	p.commit(r)
	if p.store != nil {
		p.store(r)
	}
}

// commit formats the committed rectangle in the active copy mode and writes
// it to the clipboard collaborator. Failures are logged and dropped.
func (p *RegionPresenter) commit(r region.Rect) {
	if p.copyMode == nil {
		return
	}
	text := p.copyMode.FormatRect(r.X, r.Y, r.Right(), r.Bottom())
	if p.clip == nil {
		return
	}
	if err := p.clip.Write(text); err != nil && p.logger != nil {
		p.logger.Debug("clipboard write failed", "error", err)
	}
}
