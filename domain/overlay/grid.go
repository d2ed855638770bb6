package overlay

// Line is a single grid overlay segment in frame-local pixels.
type Line struct {
	X1, Y1, X2, Y2 int
}

// Generate produces the grid overlay segments for the given extent: vertical
// lines at 0, stepX, 2*stepX, ... while x <= width, and horizontal lines
// analogously. The result is recomputed from scratch on every call; callers
// must not mutate and reuse it across zoom or resize events.
func Generate(width, height, stepX, stepY int) []Line {
	if width <= 0 || height <= 0 || stepX <= 0 || stepY <= 0 {
		return nil
	}
	lines := make([]Line, 0, width/stepX+height/stepY+2)
	for x := 0; x <= width; x += stepX {
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: height})
	}
	for y := 0; y <= height; y += stepY {
		lines = append(lines, Line{X1: 0, Y1: y, X2: width, Y2: y})
	}
	return lines
}

// GenerateInterior produces only the grid segments strictly inside the
// extent, skipping the border lines at 0 and at the far edge. Used for
// sub-grids drawn inside an already outlined rectangle.
func GenerateInterior(width, height, stepX, stepY int) []Line {
	if width <= 0 || height <= 0 || stepX <= 0 || stepY <= 0 {
		return nil
	}
	lines := make([]Line, 0, width/stepX+height/stepY)
	for x := stepX; x < width; x += stepX {
		lines = append(lines, Line{X1: x, Y1: 0, X2: x, Y2: height})
	}
	for y := stepY; y < height; y += stepY {
		lines = append(lines, Line{X1: 0, Y1: y, X2: width, Y2: y})
	}
	return lines
}

// Zoom tiers keep the rendered line count bounded: coarse steps at low zoom,
// single-pixel steps at the top tier.
var zoomSteps = []struct {
	minZoom float64
	step    int
}{
	{8, 1},
	{4, 2},
	{2, 5},
	{1, 10},
}

// StepForZoom returns the grid step for a zoom level.
func StepForZoom(zoom float64) int {
	for _, t := range zoomSteps {
		if zoom >= t.minZoom {
			return t.step
		}
	}
	return 10
}
