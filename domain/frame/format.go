package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the coordinate space used when formatting output for the
// clipboard.
type Mode int

const (
	ModePercentage Mode = iota
	ModeFrameCoords
	ModeScreenCoords
)

func (m Mode) String() string {
	switch m {
	case ModePercentage:
		return "percentage"
	case ModeFrameCoords:
		return "frame"
	case ModeScreenCoords:
		return "screen"
	default:
		return "unknown"
	}
}

// CopyMode cycles through the three output spaces and renders points and
// rectangles in the active one. It keeps no history beyond the current mode.
type CopyMode struct {
	mode Mode
	conv *Converter
}

func NewCopyMode(conv *Converter) *CopyMode {
	return &CopyMode{conv: conv}
}

// Mode returns the active output space.
func (m *CopyMode) Mode() Mode { return m.mode }

// Cycle advances to the next output space and returns it.
func (m *CopyMode) Cycle() Mode {
	m.mode = (m.mode + 1) % 3
	return m.mode
}

// FormatPoint renders a frame-relative point in the active space.
// Percentage mode emits the 0..1 fraction of the frame size to 6 decimal
// places; the 0..100 convention belongs to the status line only.
func (m *CopyMode) FormatPoint(fx, fy int) string {
	switch m.mode {
	case ModePercentage:
		a, _ := m.conv.Frame()
		fw := float64(max(1, a.Width))
		fh := float64(max(1, a.Height))
		return fmt.Sprintf("%.6f, %.6f", float64(fx)/fw, float64(fy)/fh)
	case ModeScreenCoords:
		sx, sy := m.conv.FrameToScreen(fx, fy)
		return fmt.Sprintf("%d, %d", sx, sy)
	default:
		return fmt.Sprintf("%d, %d", fx, fy)
	}
}

// FormatRect renders a frame-local rectangle by its corners, left/top then
// right/bottom, in the active space. Pixel modes truncate; screen mode adds
// the frame origin to both corners.
func (m *CopyMode) FormatRect(x1, y1, x2, y2 float64) string {
	switch m.mode {
	case ModePercentage:
		a, _ := m.conv.Frame()
		fw := float64(max(1, a.Width))
		fh := float64(max(1, a.Height))
		return fmt.Sprintf("%.6f, %.6f, %.6f, %.6f", x1/fw, y1/fh, x2/fw, y2/fh)
	case ModeScreenCoords:
		a, _ := m.conv.Frame()
		return fmt.Sprintf("%d, %d, %d, %d",
			a.X+int(x1), a.Y+int(y1), a.X+int(x2), a.Y+int(y2))
	default:
		return fmt.Sprintf("%d, %d, %d, %d",
			int(x1), int(y1), int(x2), int(y2))
	}
}

// StatusLine renders the pointer status in all three spaces at once. Field
// widths and precision are part of the observable contract.
func StatusLine(sx, sy int, c *Converter) string {
	fx, fy := c.ScreenToFrame(sx, sy)
	xp, yp := c.FrameToPercent(fx, fy)
	return fmt.Sprintf("Screen Coords: %5d, %4d | Frame Coords: %4d, %4d | Frame %%: %7.4f%%, %7.4f%%",
		sx, sy, fx, fy, xp, yp)
}

// ErrMalformedPoint is returned for coordinate text that does not parse as
// exactly two numbers.
var ErrMalformedPoint = errors.New("frame: malformed coordinate text")

// ParsePoint parses user-entered coordinate text of the form "x, y" or
// "x y". Malformed input is a local validation failure; no converter state
// is involved.
func ParsePoint(text string) (float64, float64, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return 0, 0, ErrMalformedPoint
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, ErrMalformedPoint
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, ErrMalformedPoint
	}
	return x, y, nil
}
