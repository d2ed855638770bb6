package region

const (
	// minBoxSize is the smallest edge length of the free bounding box, in
	// frame-local pixels.
	minBoxSize = 10
	// defaultBoxMin floors the default spawn size.
	defaultBoxMin = 40
	// defaultBoxShare is the default spawn size as a share of the container.
	defaultBoxShare = 0.2
)

// BoxTool is the free bounding-box variant: continuous per-edge resizing
// with an optional grid snap applied before each commit.
type BoxTool struct {
	gesture
	rect     Rect
	created  bool
	reporter Reporter
}

func NewBoxTool(reporter Reporter) *BoxTool {
	return &BoxTool{reporter: reporter}
}

// EnsureCreated spawns a centered default rectangle sized to a fifth of the
// container, floored at 40 pixels per side. Subsequent calls are no-ops.
func (t *BoxTool) EnsureCreated(containerW, containerH float64) {
	if t.created {
		return
	}
	w := containerW * defaultBoxShare
	h := containerH * defaultBoxShare
	if w < defaultBoxMin {
		w = defaultBoxMin
	}
	if h < defaultBoxMin {
		h = defaultBoxMin
	}
	t.rect = Rect{X: (containerW - w) / 2, Y: (containerH - h) / 2, W: w, H: h}
	t.created = true
}

// Restore places the tool at a previously persisted rectangle.
func (t *BoxTool) Restore(r Rect) {
	if r.W < minBoxSize || r.H < minBoxSize {
		return
	}
	t.rect = r
	t.created = true
}

func (t *BoxTool) DetectResizeDirection(px, py, scale float64) (Direction, bool) {
	if !t.created {
		return DirNone, false
	}
	return detectDirection(t.rect, px, py, scale)
}

func (t *BoxTool) BeginDrag() {
	if !t.created {
		return
	}
	t.gesture.beginDrag()
}

func (t *BoxTool) BeginResize(d Direction) {
	if !t.created {
		return
	}
	t.gesture.beginResize(d)
}

// ApplyMotion moves the active edge or the whole rectangle by the viewport
// delta. When a snap callback is supplied (grid overlay active) all four
// edges are rounded to the grid and re-normalized before the change lands.
func (t *BoxTool) ApplyMotion(dx, dy, scale float64, snap SnapFunc) {
	if !t.created {
		return
	}
	s := motionScale(scale)
	fdx := dx / s
	fdy := dy / s
	switch t.state {
	case StateDragging:
		t.rect.X += fdx
		t.rect.Y += fdy
	case StateResizing:
		t.resize(fdx, fdy)
	default:
		return
	}
	if snap != nil {
		t.rect = snapRect(t.rect, snap)
	}
}

// resize moves only the gesture's own edges, holding the minimum size floor
// on both axes.
func (t *BoxTool) resize(dx, dy float64) {
	r := &t.rect
	switch t.dir {
	case DirW, DirNW, DirSW:
		nx := r.X + dx
		nw := r.W - dx
		if nw < minBoxSize {
			nx = r.X + r.W - minBoxSize
			nw = minBoxSize
		}
		r.X, r.W = nx, nw
	}
	switch t.dir {
	case DirE, DirNE, DirSE:
		r.W += dx
		if r.W < minBoxSize {
			r.W = minBoxSize
		}
	}
	switch t.dir {
	case DirN, DirNE, DirNW:
		ny := r.Y + dy
		nh := r.H - dy
		if nh < minBoxSize {
			ny = r.Y + r.H - minBoxSize
			nh = minBoxSize
		}
		r.Y, r.H = ny, nh
	}
	switch t.dir {
	case DirS, DirSE, DirSW:
		r.H += dy
		if r.H < minBoxSize {
			r.H = minBoxSize
		}
	}
}

// FinishInteraction ends the active gesture and reports the committed
// rectangle. Safe to call while already idle.
func (t *BoxTool) FinishInteraction() {
	if !t.gesture.finish() {
		return
	}
	if t.reporter != nil && t.created {
		t.reporter.ReportRegion(t.rect)
	}
}

func (t *BoxTool) Rect() (Rect, bool) {
	return t.rect, t.created
}

// snapRect rounds all four edges to the grid and swaps any edges the
// rounding inverted.
func snapRect(r Rect, snap SnapFunc) Rect {
	x0 := snap(r.X)
	y0 := snap(r.Y)
	x1 := snap(r.Right())
	y1 := snap(r.Bottom())
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

var _ Tool = (*BoxTool)(nil)
