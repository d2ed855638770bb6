package frame

import "image"

// Area is a rectangle in screen coordinates. The resolved frame area is the
// canonical 3:2 region inside the target window's client rectangle; it is
// replaced wholesale on every re-detection, never mutated field by field.
type Area struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the area has no positive extent.
func (a Area) Empty() bool { return a.Width <= 0 || a.Height <= 0 }

// Right returns the x coordinate one past the last column.
func (a Area) Right() int { return a.X + a.Width }

// Bottom returns the y coordinate one past the last row.
func (a Area) Bottom() int { return a.Y + a.Height }

// Contains reports whether (sx, sy) lies inside the area, both edges inclusive.
func (a Area) Contains(sx, sy int) bool {
	return sx >= a.X && sx <= a.X+a.Width && sy >= a.Y && sy <= a.Y+a.Height
}

// Bounds converts the area to an image.Rectangle for capture interop.
func (a Area) Bounds() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.Width, a.Y+a.Height)
}
