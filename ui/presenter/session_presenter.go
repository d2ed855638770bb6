package presenter

import (
	"time"

	"github.com/varkel/widget-spy-go/ui/model"
)

// LockSource reports whether the tracker currently has a frame.
type LockSource interface{ Locked() bool }

// SessionView displays formatted session and total lock durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter advances the lock-session model from the current lock
// state and pushes the values to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	lock LockSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, lock LockSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, lock: lock, view: view}
}

// Tick updates the presenter: advance the session model and push values to
// the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.lock == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.lock.Locked(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
}
