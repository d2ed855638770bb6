package window

import (
	"errors"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// ErrNotFound is returned when the target window is not present. Callers
// treat it as collaborator-unavailable and degrade, never abort.
var ErrNotFound = errors.New("window: target window not found")

// Detector locates the target window and returns its client rectangle in
// screen coordinates.
type Detector interface {
	ClientRect(title string) (frame.Area, error)
}
