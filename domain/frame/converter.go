package frame

import "sync/atomic"

// Space identifies the coordinate space a raw point was expressed in.
type Space int

const (
	SpaceFrameRelative Space = iota
	SpaceScreen
	SpacePercentInteger
	SpacePercentDecimal
)

func (s Space) String() string {
	switch s {
	case SpaceFrameRelative:
		return "frame"
	case SpaceScreen:
		return "screen"
	case SpacePercentInteger:
		return "percent-int"
	case SpacePercentDecimal:
		return "percent-decimal"
	default:
		return "unknown"
	}
}

// Converter translates points between screen, frame-relative and percentage
// spaces against the current frame area. The area is swapped atomically by
// the detection tick, so concurrent readers always observe a complete
// rectangle. All conversions pass coordinates through unchanged while no
// frame is set.
type Converter struct {
	area atomic.Pointer[Area]
}

func NewConverter() *Converter { return &Converter{} }

// SetFrame replaces the current frame area.
func (c *Converter) SetFrame(a Area) {
	c.area.Store(&a)
}

// Clear drops the current frame area.
func (c *Converter) Clear() {
	c.area.Store(nil)
}

// Frame returns the current frame area, if one is set.
func (c *Converter) Frame() (Area, bool) {
	a := c.area.Load()
	if a == nil {
		return Area{}, false
	}
	return *a, true
}

// ScreenToFrame converts a screen point to frame-relative pixels.
func (c *Converter) ScreenToFrame(sx, sy int) (int, int) {
	a, ok := c.Frame()
	if !ok {
		return sx, sy
	}
	return sx - a.X, sy - a.Y
}

// FrameToScreen converts a frame-relative point to screen coordinates.
func (c *Converter) FrameToScreen(fx, fy int) (int, int) {
	a, ok := c.Frame()
	if !ok {
		return fx, fy
	}
	return fx + a.X, fy + a.Y
}

// FrameToPercent converts frame pixels to percentages of the frame size.
// Zero-size frames are guarded with a dimension floor of 1.
func (c *Converter) FrameToPercent(fx, fy int) (float64, float64) {
	a, _ := c.Frame()
	return 100 * float64(fx) / float64(max(1, a.Width)),
		100 * float64(fy) / float64(max(1, a.Height))
}

// PercentToFrame converts percentages to frame pixels, truncating.
func (c *Converter) PercentToFrame(xp, yp float64) (int, int) {
	a, _ := c.Frame()
	return int(xp / 100 * float64(a.Width)), int(yp / 100 * float64(a.Height))
}

// IsInside reports whether a screen point lies within the frame, edges
// inclusive. Always false while no frame is set.
func (c *Converter) IsInside(sx, sy int) bool {
	a, ok := c.Frame()
	if !ok {
		return false
	}
	return a.Contains(sx, sy)
}

// Classify infers the coordinate space of a raw point from its magnitude.
// The decision order is load-bearing: ambiguous small values such as (1, 1)
// classify as decimal percentages.
func (c *Converter) Classify(x, y float64) Space {
	if x >= 0 && x <= 1 && y >= 0 && y <= 1 {
		return SpacePercentDecimal
	}
	if x >= 0 && x <= 100 && y >= 0 && y <= 100 && (x > 1 || y > 1) {
		return SpacePercentInteger
	}
	if x >= 1000 || y >= 1000 {
		return SpaceScreen
	}
	return SpaceFrameRelative
}

// NormalizeToFrame classifies the point and converts it to frame pixels.
func (c *Converter) NormalizeToFrame(x, y float64) (int, int) {
	a, ok := c.Frame()
	if !ok {
		return int(x), int(y)
	}
	switch c.Classify(x, y) {
	case SpacePercentDecimal:
		return int(x * float64(a.Width)), int(y * float64(a.Height))
	case SpacePercentInteger:
		return int(x / 100 * float64(a.Width)), int(y / 100 * float64(a.Height))
	case SpaceScreen:
		return int(x) - a.X, int(y) - a.Y
	default:
		return int(x), int(y)
	}
}

// ClampToFrame saturates a frame-relative point to [0, dimension].
func (c *Converter) ClampToFrame(fx, fy int) (int, int) {
	a, ok := c.Frame()
	if !ok {
		return fx, fy
	}
	return min(max(fx, 0), a.Width), min(max(fy, 0), a.Height)
}

// ClampPercent saturates percentages to [0, 100].
func (c *Converter) ClampPercent(xp, yp float64) (float64, float64) {
	return clamp01e2(xp), clamp01e2(yp)
}

func clamp01e2(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
