package region

import "math"

const (
	hitThresholdMin  = 6.0
	hitThresholdBase = 10.0
)

// hitThreshold returns the corner/edge grab distance in frame-local pixels.
// It grows as the viewport zooms out so the on-screen grab target stays
// roughly constant.
func hitThreshold(scale float64) float64 {
	if scale <= 0 {
		return hitThresholdBase
	}
	t := hitThresholdBase / scale
	if t < hitThresholdMin {
		t = hitThresholdMin
	}
	return t
}

// detectDirection hit-tests a frame-local point against the rectangle's
// corners and edges. Corners win over edges; edge bands are only considered
// while the point lies within the rectangle extended by the threshold.
func detectDirection(r Rect, px, py, scale float64) (Direction, bool) {
	t := hitThreshold(scale)
	corners := [4]struct {
		x, y float64
		dir  Direction
	}{
		{r.X, r.Y, DirNW},
		{r.Right(), r.Y, DirNE},
		{r.X, r.Bottom(), DirSW},
		{r.Right(), r.Bottom(), DirSE},
	}
	for _, c := range corners {
		if math.Abs(px-c.x)+math.Abs(py-c.y) <= t {
			return c.dir, true
		}
	}
	if px < r.X-t || px > r.Right()+t || py < r.Y-t || py > r.Bottom()+t {
		return DirNone, false
	}
	switch {
	case math.Abs(px-r.X) <= t && py >= r.Y && py <= r.Bottom():
		return DirW, true
	case math.Abs(px-r.Right()) <= t && py >= r.Y && py <= r.Bottom():
		return DirE, true
	case math.Abs(py-r.Y) <= t && px >= r.X && px <= r.Right():
		return DirN, true
	case math.Abs(py-r.Bottom()) <= t && px >= r.X && px <= r.Right():
		return DirS, true
	}
	return DirNone, false
}

// gesture is the shared drag/resize state machine embedded by both tools.
type gesture struct {
	state State
	dir   Direction
}

func (g *gesture) State() State { return g.state }

func (g *gesture) beginDrag() bool {
	if g.state != StateIdle {
		return false
	}
	g.state = StateDragging
	return true
}

func (g *gesture) beginResize(d Direction) bool {
	if g.state != StateIdle || d == DirNone {
		return false
	}
	g.state = StateResizing
	g.dir = d
	return true
}

// finish transitions back to idle from either active state. It reports
// whether a gesture was actually active, so repeated calls stay safe and
// commit at most once.
func (g *gesture) finish() bool {
	active := g.state != StateIdle
	g.state = StateIdle
	g.dir = DirNone
	return active
}

// motionScale normalizes a zoom factor for delta conversion.
func motionScale(scale float64) float64 {
	if scale <= 0 {
		return 1
	}
	return scale
}
