package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters in pipeline order and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Track    *TrackPresenter
	Pointer  *PointerPresenter
	Session  *SessionPresenter
	Region   *RegionPresenter
	Schedule func()
}

func NewLoop(track *TrackPresenter, pointer *PointerPresenter, sess *SessionPresenter, reg *RegionPresenter, schedule func()) *Loop {
	return &Loop{Track: track, Pointer: pointer, Session: sess, Region: reg, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Detection first so the converter holds this tick's frame before the
	// pointer and region presenters read it.
	if l.Track != nil {
		l.Track.Tick(now)
	}
	if l.Pointer != nil {
		l.Pointer.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Region != nil {
		l.Region.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
