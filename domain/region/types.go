package region

// State enumerates the gesture states of a region tool. Only one of drag or
// resize may be active at a time.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Direction identifies which edge or corner a resize gesture grabs. It is
// derived from hit-testing and never outlives the current gesture.
type Direction int

const (
	DirNone Direction = iota
	DirN
	DirS
	DirE
	DirW
	DirNE
	DirNW
	DirSE
	DirSW
)

func (d Direction) String() string {
	switch d {
	case DirN:
		return "n"
	case DirS:
		return "s"
	case DirE:
		return "e"
	case DirW:
		return "w"
	case DirNE:
		return "ne"
	case DirNW:
		return "nw"
	case DirSE:
		return "se"
	case DirSW:
		return "sw"
	default:
		return "none"
	}
}

// Rect is a region rectangle in frame-local pixel coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point lies inside the rectangle, edges
// inclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// SnapFunc rounds one edge coordinate to the active grid.
type SnapFunc func(v float64) float64

// Reporter receives the tool's rectangle after every committed change (drag
// release, resize release, size change).
type Reporter interface {
	ReportRegion(Rect)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Rect)

func (f ReporterFunc) ReportRegion(r Rect) { f(r) }

// Tool is the shared contract of the interactive region tools. Hit-test
// points are frame-local pixels with hit thresholds compensated by the
// viewport zoom scale; motion deltas arrive in viewport pixels and are
// divided by the same scale.
type Tool interface {
	EnsureCreated(containerW, containerH float64)
	DetectResizeDirection(px, py, scale float64) (Direction, bool)
	BeginDrag()
	BeginResize(Direction)
	ApplyMotion(dx, dy, scale float64, snap SnapFunc)
	FinishInteraction()
	State() State
	Rect() (Rect, bool)
}
