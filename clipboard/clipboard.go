package clipboard

import (
	"errors"
	"sync/atomic"

	"golang.design/x/clipboard"
)

var ready atomic.Bool

// ErrUnavailable is returned when the system clipboard could not be
// initialized; writes degrade to this error instead of panicking.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Init prepares the system clipboard. Call once at startup.
func Init() error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	ready.Store(true)
	return nil
}

// Write puts text on the system clipboard.
func Write(text string) error {
	if !ready.Load() {
		return ErrUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
