package model

import (
	"sync/atomic"
	"time"

	"github.com/varkel/widget-spy-go/domain/frame"
)

// FrameModel holds the most recently resolved frame area alongside detection
// counters. The area is swapped by reference on every detection tick, so
// readers always see a complete rectangle.
type FrameModel struct {
	latest     atomic.Pointer[frame.Area]
	detections atomic.Uint64
	misses     atomic.Uint64
	lastNanos  atomic.Int64
}

// FrameStats summarises detection behaviour for instrumentation.
type FrameStats struct {
	Detections   uint64
	Misses       uint64
	LastDetected time.Time
}

func NewFrameModel() *FrameModel { return &FrameModel{} }

// SetFrame records a successful detection.
func (m *FrameModel) SetFrame(a frame.Area) {
	if m == nil {
		return
	}
	m.latest.Store(&a)
	m.detections.Add(1)
	m.lastNanos.Store(time.Now().UnixNano())
}

// Clear drops the current frame after a failed detection.
func (m *FrameModel) Clear() {
	if m == nil {
		return
	}
	m.latest.Store(nil)
}

// RecordMiss counts a detection tick that found no usable window.
func (m *FrameModel) RecordMiss() {
	if m == nil {
		return
	}
	m.misses.Add(1)
}

// Frame returns the current frame area, if any.
func (m *FrameModel) Frame() (frame.Area, bool) {
	if m == nil {
		return frame.Area{}, false
	}
	a := m.latest.Load()
	if a == nil {
		return frame.Area{}, false
	}
	return *a, true
}

// Locked reports whether the tracker currently has a frame.
func (m *FrameModel) Locked() bool {
	_, ok := m.Frame()
	return ok
}

// Stats returns a snapshot of the detection counters.
func (m *FrameModel) Stats() FrameStats {
	if m == nil {
		return FrameStats{}
	}
	s := FrameStats{
		Detections: m.detections.Load(),
		Misses:     m.misses.Load(),
	}
	if n := m.lastNanos.Load(); n > 0 {
		s.LastDetected = time.Unix(0, n)
	}
	return s
}
