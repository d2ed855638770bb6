package model

import (
	"sync/atomic"
)

// TrackingModel tracks whether window tracking is enabled. The zero value is
// disabled and usable. Concurrency-safe via atomic Bool because external
// toggles and poll ticks may race.
type TrackingModel struct{ enabled atomic.Bool }

// Enabled reports whether tracking is currently enabled.
func (m *TrackingModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

// SetEnabled stores the enabled flag.
func (m *TrackingModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	if m.enabled.Load() == b { // no change
		return
	}
	m.enabled.Store(b)
}
