package region

import (
	"math"

	"github.com/varkel/widget-spy-go/domain/overlay"
)

const (
	squareMinSize     = 16
	squareMaxSize     = 512
	squareSizeStep    = 16
	squareDefaultSize = 64
	subGridCells      = 16
)

// SquareTool is the fixed-grid-square variant: its size lives on the
// 16..512 lattice and changes only through discrete SizeUp/SizeDown steps
// that re-center the square about its centroid. Dragging is raw 1:1
// translation; the position snaps to whole pixels on release.
type SquareTool struct {
	gesture
	rect     Rect
	size     int
	created  bool
	reporter Reporter
}

func NewSquareTool(reporter Reporter) *SquareTool {
	return &SquareTool{reporter: reporter}
}

// EnsureCreated spawns a centered default square. Subsequent calls are
// no-ops.
func (t *SquareTool) EnsureCreated(containerW, containerH float64) {
	if t.created {
		return
	}
	t.size = squareDefaultSize
	s := float64(t.size)
	t.rect = Rect{X: math.Round((containerW - s) / 2), Y: math.Round((containerH - s) / 2), W: s, H: s}
	t.created = true
}

func (t *SquareTool) DetectResizeDirection(px, py, scale float64) (Direction, bool) {
	if !t.created {
		return DirNone, false
	}
	return detectDirection(t.rect, px, py, scale)
}

func (t *SquareTool) BeginDrag() {
	if !t.created {
		return
	}
	t.gesture.beginDrag()
}

func (t *SquareTool) BeginResize(d Direction) {
	if !t.created {
		return
	}
	t.gesture.beginResize(d)
}

// ApplyMotion translates the square while dragging. Continuous resizing is
// deliberately unsupported; size changes go through SizeUp/SizeDown. The
// snap callback is ignored: no snapping happens during motion.
func (t *SquareTool) ApplyMotion(dx, dy, scale float64, snap SnapFunc) {
	if !t.created || t.state != StateDragging {
		return
	}
	s := motionScale(scale)
	t.rect.X += dx / s
	t.rect.Y += dy / s
}

// FinishInteraction ends the active gesture, snaps the position to the
// nearest whole pixel and reports the committed rectangle. Safe to call
// while already idle.
func (t *SquareTool) FinishInteraction() {
	if !t.gesture.finish() {
		return
	}
	t.rect.X = math.Round(t.rect.X)
	t.rect.Y = math.Round(t.rect.Y)
	t.report()
}

// SizeUp grows the square one lattice step, re-centered about its centroid.
// A no-op at the top of the lattice.
func (t *SquareTool) SizeUp() {
	t.resizeTo(t.size + squareSizeStep)
}

// SizeDown shrinks the square one lattice step, re-centered about its
// centroid. A no-op at the bottom of the lattice.
func (t *SquareTool) SizeDown() {
	t.resizeTo(t.size - squareSizeStep)
}

func (t *SquareTool) resizeTo(size int) {
	if !t.created || size < squareMinSize || size > squareMaxSize {
		return
	}
	cx, cy := t.rect.CenterX(), t.rect.CenterY()
	s := float64(size)
	t.size = size
	t.rect = Rect{X: cx - s/2, Y: cy - s/2, W: s, H: s}
	t.report()
}

// Size returns the current lattice size.
func (t *SquareTool) Size() int { return t.size }

func (t *SquareTool) Rect() (Rect, bool) {
	return t.rect, t.created
}

// SubGridLines derives the square's internal 16x16 sub-grid for the current
// rectangle. Only the interior lines are produced; the square's own outline
// covers the borders. Purely a visual aid, recomputed on every call and
// never persisted.
func (t *SquareTool) SubGridLines() []overlay.Line {
	if !t.created {
		return nil
	}
	step := t.size / subGridCells
	return overlay.GenerateInterior(t.size, t.size, step, step)
}

func (t *SquareTool) report() {
	if t.reporter != nil {
		t.reporter.ReportRegion(t.rect)
	}
}

var _ Tool = (*SquareTool)(nil)
