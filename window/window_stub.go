//go:build !windows

package window

import (
	"errors"

	"github.com/varkel/widget-spy-go/domain/frame"
)

type stubDetector struct{}

// NewDetector returns a detector that reports the window collaborator as
// unavailable on platforms without a window-system binding.
func NewDetector() Detector { return stubDetector{} }

func (stubDetector) ClientRect(string) (frame.Area, error) {
	return frame.Area{}, ErrNotFound
}

// CursorPos is unavailable without a window-system binding.
func CursorPos() (int, int, error) {
	return 0, 0, errors.New("window: cursor position unavailable on this platform")
}
